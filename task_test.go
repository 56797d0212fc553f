package bench

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fortytw2/leaktest"
)

func TestCall(t *testing.T) {
	defer leaktest.Check(t)()

	h := Call(func() (int64, error) { return 25, nil })
	for i := 0; i < 3; i++ {
		v, err := h.Wait()
		if err != nil {
			t.Fatalf("Wait: unexpected error: %v", err)
		}
		if v != 25 {
			t.Errorf("Wait: got %d, want 25", v)
		}
	}
}

func TestCallError(t *testing.T) {
	defer leaktest.Check(t)()

	errBogus := errors.New("bogus")
	h := Call(func() (int, error) { return 0, errBogus })
	if _, err := h.Wait(); err != errBogus {
		t.Errorf("Wait: got error %v, want %v", err, errBogus)
	}
}

func TestCallPanic(t *testing.T) {
	defer leaktest.Check(t)()

	h := Call(func() (int, error) { panic("unlucky") })
	_, err := h.Wait()
	if err == nil {
		t.Fatal("Wait: got nil, want a panic error")
	}
	if !strings.Contains(err.Error(), "unlucky") {
		t.Errorf("Wait: error %v does not mention the panic value", err)
	}
}

func TestPool(t *testing.T) {
	defer leaktest.Check(t)()

	const numTasks = 64

	var n atomic.Int32
	var pool Pool
	for i := 0; i < numTasks; i++ {
		pool.Go(func() error { n.Add(1); return nil })
	}
	if err := pool.Wait(); err != nil {
		t.Errorf("Wait: unexpected error: %v", err)
	}
	if got := n.Load(); got != numTasks {
		t.Errorf("Task count: got %d, want %d", got, numTasks)
	}
}

func TestPoolErrorPropagation(t *testing.T) {
	defer leaktest.Check(t)()

	errBogus := errors.New("bogus")
	var pool Pool
	pool.Go(func() error { return nil })
	pool.Go(func() error { return errBogus })
	pool.Go(func() error { return nil })
	if err := pool.Wait(); err != errBogus {
		t.Errorf("Wait: got error %v, want %v", err, errBogus)
	}
}

func TestPoolPanic(t *testing.T) {
	defer leaktest.Check(t)()

	var pool Pool
	pool.Go(func() error { panic("worker died") })
	err := pool.Wait()
	if err == nil {
		t.Fatal("Wait: got nil, want a panic error")
	}
	if !strings.Contains(err.Error(), "worker died") {
		t.Errorf("Wait: error %v does not mention the panic value", err)
	}
}
