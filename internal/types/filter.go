package types

import "iter"

// StudentsOlderThan yields, in roster order, every Student whose age is
// strictly greater than age. Nothing is evaluated until the sequence is ranged.
func StudentsOlderThan(people []Person, age int) iter.Seq[Student] {
	return func(yield func(Student) bool) {
		for _, p := range people {
			var s Student
			switch v := p.(type) {
			case Student:
				s = v
			case *Student:
				if v == nil {
					continue
				}
				s = *v
			default:
				continue
			}
			if s.Age <= age {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}
