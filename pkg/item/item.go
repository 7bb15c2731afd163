package item

import (
	"go.uber.org/atomic"
)

type Item struct {
	Id          int
	AccessCount *atomic.Int64
}
