package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/viant/lifecycle/transport"
)

// DemoCmd walks a Transport through its singleton lifecycle: acquire, share,
// identity comparison, callable forwarding, release and a failed open.
type DemoCmd struct {
	Names []string `short:"n" long:"name" description:"transport names; the first one wins, the second is acquired while it is live"`
}

func (c *DemoCmd) Execute(_ []string) error {
	return c.run(os.Stdout)
}

// myCallable is a stateful callable handed to ProcessWithCallable.
type myCallable struct {
	data uint64
}

func (m myCallable) call(arg uint64) transport.UUID {
	return fmt.Sprintf("MyCallable data=%d arg=%d", m.data, arg)
}

func (c *DemoCmd) run(w io.Writer) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	names := c.Names
	if len(names) == 0 {
		names = cfg.Demo.Names
	}
	first, second := names[0], "handle3"
	if len(names) > 1 {
		second = names[1]
	}

	fmt.Fprintln(w, "top of demo")
	wrapper := transport.Singleton()

	handle1, err := wrapper.Acquire(first)
	if err != nil {
		return fmt.Errorf("acquire %q: %w", first, err)
	}
	fmt.Fprintln(w, handle1.Instance().Process("a"))
	fmt.Fprintln(w, handle1.Instance().Process("b"))

	handle2 := handle1.Share()
	fmt.Fprintln(w, handle1.Instance().Process("c"))
	fmt.Fprintln(w, handle1.Instance().Process("d"))

	fmt.Fprintf(w, "inside use_count=%d\n", handle1.UseCount())
	fmt.Fprintf(w, "is handle1 == handle2 = %v\n", handle1.Same(handle2))

	handle3, err := wrapper.Acquire(second)
	if err != nil {
		return fmt.Errorf("acquire %q: %w", second, err)
	}
	fmt.Fprintf(w, "is handle1 == handle3 = %v\n", handle1.Same(handle3))
	fmt.Fprintf(w, "handle3 name=%s\n", handle3.Instance().Name())

	lambda := func(arg uint64) transport.UUID { return fmt.Sprintf("lambda%d", arg) }
	fmt.Fprintf(w, "got %s from callable\n", handle3.Instance().ProcessWithCallable(lambda))
	for _, policy := range []myCallable{{data: 1}, {data: 2}} {
		fmt.Fprintf(w, "got %s from callable\n", handle3.Instance().ProcessWithCallable(policy.call))
	}

	handle1.Release()
	handle2.Release()
	handle3.Release()
	fmt.Fprintf(w, "after release use_count=%d live=%v\n", handle1.UseCount(), wrapper.Live())

	if _, err := wrapper.Acquire(transport.FailName); err != nil {
		desc, _ := wrapper.Result(err)
		fmt.Fprintf(w, "acquire %q: %s\n", transport.FailName, desc)
	}
	fmt.Fprintln(w, "bottom of demo")
	return nil
}
