package ratecounter

import (
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCounter(t *testing.T) {
	Convey("When Add is called", t, func() {
		Convey("When multiple writers add to the counter concurrently", func() {
			var c Counter
			numOps := 3000
			numWriters := 200

			start := make(chan struct{})
			wg := sync.WaitGroup{}
			wg.Add(numWriters)
			adder := func() {
				<-start
				for i := 0; i < numOps; i++ {
					c.Add(1.0)
				}
				wg.Done()
			}

			for i := 0; i < numWriters; i++ {
				go adder()
			}

			time.Sleep(time.Millisecond * 10)
			close(start)
			wg.Wait()
			So(c.Load(), ShouldEqual, float64(numOps*numWriters))
		})

		Convey("When multiple writers increment and decrement concurrently", func() {
			var c Counter
			numOps := 3000
			numWriters := 200

			start := make(chan struct{})
			wg := sync.WaitGroup{}
			wg.Add(numWriters * 2)
			incrementer := func() {
				<-start
				for i := 0; i < numOps; i++ {
					c.Add(1.0)
				}
				wg.Done()
			}
			decrementer := func() {
				<-start
				for i := 0; i < numOps; i++ {
					c.Add(-1.0)
				}
				wg.Done()
			}

			for i := 0; i < numWriters; i++ {
				go incrementer()
				go decrementer()
			}

			time.Sleep(time.Millisecond * 10)
			close(start)
			wg.Wait()
			So(c.Load(), ShouldEqual, float64(0.0))
		})

		Convey("Reset returns the previous total and zeroes the counter", func() {
			var c Counter
			c.Add(42.0)
			prev := c.Reset()
			So(prev, ShouldEqual, 42.0)
			So(c.Load(), ShouldEqual, 0.0)
		})
	})
}
