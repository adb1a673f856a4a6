// Command batchbench drives core.Batch.StepMany across thousands of
// concurrently-processed episode slots and reports steps/sec, exercising the
// batch driver the way a training loop would without implementing any
// policy learning itself.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	channerics "github.com/niceyeti/channerics/channels"

	"prospector/core"
	"prospector/internal/limits"
	"prospector/internal/ratecounter"
)

const logTag = "BATCHBENCH"

func main() {
	episodes := flag.Int("episodes", 4096, "number of concurrently-stepped episode slots")
	duration := flag.Duration("duration", 10*time.Second, "how long to run the benchmark")
	reportEvery := flag.Duration("report", 2*time.Second, "throughput reporting interval")
	flag.Parse()

	cfgs := make([]core.Config, *episodes)
	seeds := make([]uint64, *episodes)
	for i := range cfgs {
		cfg, err := core.NewConfig()
		if err != nil {
			log.Fatalf("[%s] NewConfig: %v", logTag, err)
		}
		cfgs[i] = cfg
		seeds[i] = uint64(i)
	}

	batch := core.NewBatch(cfgs)
	obsOut := make([][limits.ObsDim]float32, *episodes)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	if err := batch.ResetMany(ctx, seeds, obsOut); err != nil {
		log.Fatalf("[%s] ResetMany: %v", logTag, err)
	}
	log.Printf("[%s] reset %d episodes, stepping for %v", logTag, *episodes, *duration)

	var stepsDone ratecounter.Counter
	go reportThroughput(ctx.Done(), &stepsDone, *reportEvery)

	src := rand.New(rand.NewSource(1))
	actions := make([]uint8, *episodes)
	out := make([]core.StepResult, *episodes)

	start := time.Now()
	rounds := 0
	// The reporter resets stepsDone on every tick, so the run total is
	// kept separately.
	totalSteps := 0.0
	for ctx.Err() == nil {
		for i := range actions {
			actions[i] = uint8(src.Intn(core.NumActions))
		}
		if err := batch.StepMany(ctx, actions, out); err != nil {
			break
		}
		// Episodes that terminate or truncate keep returning sticky
		// results until the run ends; re-seeding them mid-benchmark would
		// just be noise on top of the throughput number this measures.
		stepsDone.Add(float64(*episodes))
		totalSteps += float64(*episodes)
		rounds++
	}

	elapsed := time.Since(start)
	total := totalSteps
	log.Printf("[%s] finished: %d rounds, %.0f total steps in %v (%.0f steps/sec)",
		logTag, rounds, total, elapsed, total/elapsed.Seconds())
}

// reportThroughput prints the steps/sec delta since the last tick on the
// channerics ticker idiom, resetting the counter after each read.
func reportThroughput(done <-chan struct{}, counter *ratecounter.Counter, interval time.Duration) {
	last := time.Now()
	for range channerics.NewTicker(done, interval) {
		now := time.Now()
		delta := counter.Reset()
		dt := now.Sub(last).Seconds()
		last = now
		if dt <= 0 {
			continue
		}
		log.Printf("[%s] %.0f steps/sec", logTag, delta/dt)
	}
}
