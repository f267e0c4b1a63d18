package value

import "github.com/dripjson/dripjson/token"

// container is the state shared by Object and Array: the shared parser, the
// progress flags and the currently open child container, which must be
// drained before the parent can move on.
type container struct {
	p       *parser
	started bool
	done    bool
	err     error

	current Value
	// child is current when it is a container, nil otherwise.  It has to be
	// finished before the next token of this container can be pulled.
	child Value
}

// Done reports whether the container is exhausted: its closing token has
// been consumed, or the whole of it was skipped.
func (c *container) Done() bool {
	return c.done
}

// Err returns the first error encountered while advancing the container, if
// any.
func (c *container) Err() error {
	return c.err
}

// Skip consumes and discards the rest of the container, including any open
// descendant.  After Skip the container is exhausted.
func (c *container) Skip() error {
	return c.skip()
}

func (c *container) skip() error {
	if c.err != nil {
		return c.err
	}
	if c.done {
		return nil
	}
	if err := c.finishChild(); err != nil {
		return c.fail(err)
	}
	if err := c.p.skipToClose(); err != nil {
		return c.fail(err)
	}
	c.setDone()
	return nil
}

// finishChild drains the still-open child container, recursively through its
// own descendants, so that the next token in the stream belongs to this
// container again.
func (c *container) finishChild() error {
	if c.child == nil {
		return nil
	}
	err := c.child.skip()
	c.child = nil
	return err
}

func (c *container) setCurrent(v Value) {
	c.started = true
	c.current = v
	switch v.(type) {
	case *Object, *Array:
		c.child = v
	default:
		c.child = nil
	}
}

func (c *container) setDone() {
	c.done = true
	c.current = nil
}

func (c *container) fail(err error) error {
	c.err = err
	c.current = nil
	return err
}

// expectNext pulls the next token, recording any error on the container.
func (c *container) expectNext() (token.Token, bool) {
	tok, err := c.p.next()
	if err != nil {
		c.fail(err)
		return nil, false
	}
	return tok, true
}
