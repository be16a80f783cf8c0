package types

import (
	"fmt"
	"io"
)

// Person is a member of the roster. Every variant renders itself as one line.
type Person interface {
	Profile() Base
	Info() string
}

// Base holds the fields every variant shares. Values are not validated.
type Base struct {
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
}

func (b Base) Profile() Base { return b }

type Student struct {
	Base  `yaml:",inline"`
	Grade int `json:"grade" yaml:"grade"`
}

func (s Student) Info() string {
	return fmt.Sprintf("Student: %s, Age: %d, Grade: %d", s.Name, s.Age, s.Grade)
}

// Summary is the short form used when listing filtered students.
func (s Student) Summary() string {
	return fmt.Sprintf("%s, Age: %d, Grade: %d", s.Name, s.Age, s.Grade)
}

type Teacher struct {
	Base    `yaml:",inline"`
	Subject string `json:"subject" yaml:"subject"`
}

func (t Teacher) Info() string {
	return fmt.Sprintf("Teacher: %s, Age: %d, Subject: %s", t.Name, t.Age, t.Subject)
}

// DisplayInfo writes p's rendering followed by a newline.
func DisplayInfo(w io.Writer, p Person) error {
	_, err := io.WriteString(w, p.Info()+"\n")
	return err
}

func SampleRoster() []Person {
	return []Person{
		Student{Base: Base{Name: "Alice", Age: 20}, Grade: 90},
		Student{Base: Base{Name: "Bob", Age: 22}, Grade: 85},
		Teacher{Base: Base{Name: "Dr. Smith", Age: 45}, Subject: "Mathematics"},
	}
}
