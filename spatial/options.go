// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package spatial

import "errors"

const (
	defaultEps = 0
)

type MeshOptions struct {
	// Eps is the distance a point must exceed above a face plane for the face to be
	// visible from it.
	Eps float64
}

type MeshOption func(*MeshOptions) error

func WithEps(eps float64) MeshOption {
	return func(o *MeshOptions) error {
		if eps < 0 {
			return errors.New("WithEps: eps must be non-negative")
		}
		o.Eps = eps
		return nil
	}
}
