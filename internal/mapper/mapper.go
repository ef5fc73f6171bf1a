// Package mapper copies like-named fields between record shapes
// (entities, DTOs, storage rows). It is built once and injected; nothing here is global.
package mapper

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Mapper copies every field src and dst share by name and compatible type.
type Mapper interface {
	Copy(dst, src any) error
}

type copierMapper struct {
	opt copier.Option
}

// New returns a Mapper backed by copier with deep copies enabled, so
// pointer fields (e.g. a parent category code) are not shared between shapes.
func New() Mapper {
	return &copierMapper{opt: copier.Option{DeepCopy: true}}
}

func (m *copierMapper) Copy(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, m.opt); err != nil {
		return fmt.Errorf("map %T to %T: %w", src, dst, err)
	}
	return nil
}

// To maps src into a fresh T.
func To[T any](m Mapper, src any) (T, error) {
	var out T
	if err := m.Copy(&out, src); err != nil {
		return out, err
	}
	return out, nil
}

// Slice maps every element of src into a T. A nil or empty input yields an empty, non-nil slice.
func Slice[T, S any](m Mapper, src []S) ([]T, error) {
	out := make([]T, 0, len(src))
	for i := range src {
		v, err := To[T](m, &src[i])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
