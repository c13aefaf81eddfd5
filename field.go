package ecsgo

import "reflect"

// Kind names a component type without a value. It is used to remove
// components and to build filters.
type Kind interface {
	// Type returns the Go type of the kind.
	Type() reflect.Type
	resolve(r *Registry) ComponentType
}

// Field is a component value staged for insertion into a row.
type Field interface {
	Kind
	isField()
}

type kindOf[T any] struct{}

func (kindOf[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

func (kindOf[T]) resolve(r *Registry) ComponentType { return TypeOf[T](r) }

// KindOf returns the Kind token for T.
func KindOf[T any]() Kind { return kindOf[T]{} }

type valueField[T any] struct {
	value T
}

func (valueField[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

func (valueField[T]) resolve(r *Registry) ComponentType { return TypeOf[T](r) }

func (valueField[T]) isField() {}

// With stages the component value v.
func With[T any](v T) Field { return valueField[T]{value: v} }

// Zero stages the zero value of T.
func Zero[T any]() Field { return valueField[T]{} }
