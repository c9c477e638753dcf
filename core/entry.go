package core

import (
	"sync"
	"time"
)

// Entry represents a single log call
type Entry struct {
	Time    time.Time
	Level   Level
	Tag     string
	Message string
	// Err is rendered after the message; nil renders as an empty slot.
	Err error
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	*e = Entry{}
	entryPool.Put(e)
}
