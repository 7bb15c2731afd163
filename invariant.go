package doubly

import (
	"github.com/pkg/errors"
)

var (
	lenerr      = errors.New("head/tail disagree with len")
	symmetryerr = errors.New("prev/next symmetry broken")
	cycleerr    = errors.New("walk does not terminate")
)

// check walks the whole structure: head, tail and len must agree, every
// interior link pair must be symmetric, and following next from head must
// reach tail in exactly len-1 steps (likewise prev from tail).
func (l *LinkedList[T]) check() error {
	if l.len == 0 {
		if l.head != nil || l.tail != nil {
			return lenerr
		}

		return nil
	}

	if l.head == nil || l.tail == nil {
		return lenerr
	}

	if l.head.prev != nil || l.tail.next != nil {
		return errors.Wrap(symmetryerr, "list end links outward")
	}

	steps := 0
	for n := l.head; n != l.tail; n = n.next {
		if n.next == nil {
			return errors.Wrapf(cycleerr, "forward walk broke after %d steps", steps)
		}

		if n.next.prev != n {
			return errors.Wrapf(symmetryerr, "forward step %d", steps)
		}

		steps++
		if steps >= l.len {
			return errors.Wrapf(cycleerr, "tail not reached within %d steps", l.len-1)
		}
	}

	if steps != l.len-1 {
		return errors.Wrapf(lenerr, "tail reached after %d steps", steps)
	}

	steps = 0
	for n := l.tail; n != l.head; n = n.prev {
		if n.prev == nil {
			return errors.Wrapf(cycleerr, "backward walk broke after %d steps", steps)
		}

		if n.prev.next != n {
			return errors.Wrapf(symmetryerr, "backward step %d", steps)
		}

		steps++
		if steps >= l.len {
			return errors.Wrapf(cycleerr, "head not reached within %d steps", l.len-1)
		}
	}

	if steps != l.len-1 {
		return errors.Wrapf(lenerr, "head reached after %d steps", steps)
	}

	return nil
}
