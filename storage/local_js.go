//go:build js
// +build js

package storage

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

// Local is a Store backed by window.localStorage. Browsers may throw on any
// access (private mode, disabled cookies, quota); those exceptions come back
// as ErrUnavailable.
type Local struct{}

// NewLocal returns the localStorage-backed store.
func NewLocal() *Local {
	return &Local{}
}

// Available reports whether localStorage can be reached at all.
func (s *Local) Available() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return s.storage() != nil
}

func (s *Local) storage() *js.Object {
	ls := js.Global.Get("localStorage")
	if ls == nil || ls == js.Undefined {
		return nil
	}
	return ls
}

func (s *Local) Get(key string) (value string, err error) {
	defer recoverUnavailable(&err)
	ls := s.storage()
	if ls == nil {
		return "", ErrUnavailable
	}
	v := ls.Call("getItem", key)
	if v == nil || v == js.Undefined {
		return "", ErrNotFound
	}
	return v.String(), nil
}

func (s *Local) Set(key, value string) (err error) {
	defer recoverUnavailable(&err)
	ls := s.storage()
	if ls == nil {
		return ErrUnavailable
	}
	ls.Call("setItem", key, value)
	return nil
}

func (s *Local) Delete(key string) (err error) {
	defer recoverUnavailable(&err)
	ls := s.storage()
	if ls == nil {
		return ErrUnavailable
	}
	ls.Call("removeItem", key)
	return nil
}

func recoverUnavailable(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrUnavailable, r)
	}
}
