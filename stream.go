package formdata

import "iter"

// AppendIter appends every field produced by seq, in order. It stops at
// the first error; fields not yet yielded are left untouched.
func (fw *Writer[W]) AppendIter(seq iter.Seq[Field]) error {
	var appendErr error
	seq(func(f Field) bool {
		if err := fw.Append(f); err != nil {
			appendErr = err
			return false
		}
		return true
	})
	return appendErr
}

// AppendChan appends fields received from ch until it is closed.
// It is a thin wrapper around [Writer.AppendIter].
func (fw *Writer[W]) AppendChan(ch <-chan Field) error {
	return fw.AppendIter(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
