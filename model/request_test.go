package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequest_Validate(t *testing.T) {
	t.Run("nil request", func(t *testing.T) {
		var r *Request
		require.Error(t, r.Validate())
	})

	t.Run("empty request is valid", func(t *testing.T) {
		r := NewRequest()
		require.NoError(t, r.Validate())
	})

	t.Run("well formed", func(t *testing.T) {
		r := NewRequest()
		r.AddSubject(NewSubject())
		r.AddResource(NewResource())
		require.NoError(t, r.Validate())
	})
}

func TestRequest_AddSubject_AddResource_PreservesOrder(t *testing.T) {
	r := NewRequest()

	s1 := NewSubject()
	cat1 := "subject-category-1"
	s1.SetCategory(&cat1)
	s2 := NewSubject()
	cat2 := "subject-category-2"
	s2.SetCategory(&cat2)

	r.AddSubject(s1)
	r.AddSubject(s2)

	require.Equal(t, cat1, *r.Subjects[0].Category)
	require.Equal(t, cat2, *r.Subjects[1].Category)
}

func TestRequest_Clone_IsIndependent(t *testing.T) {
	r := NewRequest()
	s := NewSubject()
	attr, err := NewAttribute("id")
	require.NoError(t, err)
	attr.AddValue("v1")
	s.AddAttribute(attr)
	r.AddSubject(s)
	r.AddResource(NewResource())
	r.SetAction(NewAction())
	r.SetEnvironment(NewEnvironment())

	clone := r.Clone()
	require.Len(t, clone.Subjects, 1)
	require.Equal(t, "v1", clone.Subjects[0].Attributes[0].Values[0])

	clone.Subjects[0].Attributes[0].AddValue("v2")
	require.Len(t, r.Subjects[0].Attributes[0].Values, 1, "clone mutation must not leak back")

	clone.AddSubject(NewSubject())
	require.Len(t, r.Subjects, 1, "appending to clone's slice must not affect original")
}
