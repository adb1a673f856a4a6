// Command playground is an interactive single-episode console driver,
// modeled on the teacher's show_grid/show_policy loop: reset one episode,
// feed it actions, and print its render-state and step metrics after each
// one. It is a loop over stdin, not a server — no network listener, no
// persisted state.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"prospector/core"
)

const logTag = "PLAYGROUND"

func main() {
	seed := flag.Uint64("seed", 1, "episode seed")
	script := flag.String("script", "", "comma-separated action ids to replay instead of prompting")
	randomSteps := flag.Int("random", 0, "take this many random actions instead of prompting")
	flag.Parse()

	cfg, err := core.NewConfig()
	if err != nil {
		log.Fatalf("[%s] NewConfig: %v", logTag, err)
	}

	ep := core.NewEpisode(cfg)
	var obs [260]float32
	ep.Reset(*seed, &obs)
	log.Printf("[%s] reset with seed %d", logTag, *seed)
	printState(ep)

	switch {
	case *script != "":
		runScript(ep, *script)
	case *randomSteps > 0:
		runRandom(ep, *randomSteps, *seed)
	default:
		runInteractive(ep)
	}
}

func runScript(ep *core.Episode, script string) {
	for _, tok := range strings.Split(script, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		a, err := strconv.Atoi(tok)
		if err != nil || a < 0 || a > 255 {
			log.Printf("[%s] skipping malformed action token %q", logTag, tok)
			continue
		}
		step(ep, uint8(a))
	}
}

func runRandom(ep *core.Episode, n int, seed uint64) {
	src := rand.New(rand.NewSource(int64(seed)))
	for i := 0; i < n; i++ {
		a := uint8(src.Intn(core.NumActions))
		if !step(ep, a) {
			break
		}
	}
}

func runInteractive(ep *core.Episode) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("enter an action id (0-68), 'r' for render-state, or 'q' to quit")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "q" || line == "quit":
			return
		case line == "r" || line == "render":
			printRenderState(ep)
		default:
			a, err := strconv.Atoi(line)
			if err != nil || a < 0 || a > 255 {
				fmt.Println("not a valid action id")
				continue
			}
			if !step(ep, uint8(a)) {
				return
			}
		}
	}
}

// step applies one action and prints the resulting step metrics and
// render-state. It returns false once the episode needs a reset, so callers
// driving a fixed or scripted sequence know to stop.
func step(ep *core.Episode, a uint8) bool {
	r := ep.Step(a)
	log.Printf("[%s] action=%d resolved=%d dt=%d reward=%.4f invalid=%v terminated=%v truncated=%v",
		logTag, a, r.Action, r.Dt, r.Reward, r.InvalidAction, r.Terminated, r.Truncated)
	printMetrics(r.Metrics)
	printRenderState(ep)
	return !(r.Terminated || r.Truncated)
}

func printState(ep *core.Episode) {
	printRenderState(ep)
}

func printMetrics(m core.StepMetrics) {
	b, err := json.Marshal(m)
	if err != nil {
		log.Printf("[%s] metrics marshal: %v", logTag, err)
		return
	}
	fmt.Printf("metrics: %s\n", b)
}

func printRenderState(ep *core.Episode) {
	b, err := json.MarshalIndent(ep.RenderState(), "", "  ")
	if err != nil {
		log.Printf("[%s] render-state marshal: %v", logTag, err)
		return
	}
	fmt.Printf("%s\n", b)
}
