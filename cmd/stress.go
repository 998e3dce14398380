package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	"github.com/viant/lifecycle/internal/logging"
	"github.com/viant/lifecycle/singleton"
)

// StressCmd acquires a counting singleton from many goroutines at once and
// verifies that each round observes exactly one instance.
type StressCmd struct {
	Goroutines int  `short:"g" long:"goroutines" description:"concurrent callers per round"`
	Iterations int  `short:"i" long:"iterations" description:"number of rounds"`
	KeepAlive  bool `short:"k" long:"keepalive" description:"pin the instance for the process lifetime"`
}

func (c *StressCmd) Execute(_ []string) error {
	return c.run(os.Stdout)
}

type stressInstance struct {
	id int64
}

func (c *StressCmd) run(w io.Writer) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	goroutines, iterations, keepAlive := c.Goroutines, c.Iterations, c.KeepAlive || cfg.Stress.KeepAlive
	if goroutines <= 0 {
		goroutines = cfg.Stress.Goroutines
	}
	if iterations <= 0 {
		iterations = cfg.Stress.Iterations
	}

	var ids atomic.Int64
	opts := []singleton.Option{singleton.WithName("stress"), singleton.WithLogger(logging.Component("stress"))}
	if keepAlive {
		opts = append(opts, singleton.WithKeepAlive())
	}
	wrapper := singleton.New(func(struct{}) *stressInstance {
		return &stressInstance{id: ids.Add(1)}
	}, opts...)

	var errs error
	for round := 0; round < iterations; round++ {
		before := ids.Load()
		handles := acquireAll(wrapper, goroutines)
		for i, h := range handles[1:] {
			if !h.Same(handles[0]) {
				errs = multierror.Append(errs, fmt.Errorf("round %d: caller %d got a different instance", round, i+1))
			}
		}
		built := ids.Load() - before
		expected := int64(1)
		if keepAlive && round > 0 {
			expected = 0
		}
		if built != expected {
			errs = multierror.Append(errs, fmt.Errorf("round %d: constructed %d instances, expected %d", round, built, expected))
		}
		for _, h := range handles {
			h.Release()
		}
	}

	if err := renderStats(w, wrapper.Stats()); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}

func acquireAll[T, A any](wrapper *singleton.Wrapper[T, A], callers int) []*singleton.Handle[T] {
	var args A
	handles := make([]*singleton.Handle[T], callers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			handles[i] = wrapper.Acquire(args)
		}(i)
	}
	close(start)
	wg.Wait()
	return handles
}
