package entities

import (
	"fmt"

	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
)

// FieldSetter is implemented by the element types of nested editable lists
// (gallery slides, social links, office locations).
type FieldSetter interface {
	SetField(field, value string) error
}

// EditableList applies add / update-field / remove edits to a slice owned by
// a content document.
type EditableList[T any, PT interface {
	*T
	FieldSetter
}] struct {
	items *[]T
}

func NewEditableList[T any, PT interface {
	*T
	FieldSetter
}](items *[]T) *EditableList[T, PT] {
	return &EditableList[T, PT]{items: items}
}

func (l *EditableList[T, PT]) Items() []T {
	return *l.items
}

func (l *EditableList[T, PT]) Len() int {
	return len(*l.items)
}

func (l *EditableList[T, PT]) Add(item T) {
	*l.items = append(*l.items, item)
}

func (l *EditableList[T, PT]) UpdateField(index int, field, value string) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	return PT(&(*l.items)[index]).SetField(field, value)
}

func (l *EditableList[T, PT]) Remove(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	items := *l.items
	*l.items = append(items[:index], items[index+1:]...)
	return nil
}

func (l *EditableList[T, PT]) checkIndex(index int) error {
	if index < 0 || index >= len(*l.items) {
		return fmt.Errorf("index %d of %d: %w", index, len(*l.items), apperrors.ErrIndexOutOfRange)
	}
	return nil
}

type ListOp string

const (
	ListOpAdd    ListOp = "add"
	ListOpUpdate ListOp = "update"
	ListOpRemove ListOp = "remove"
)

// ListEdit is one edit sent by the admin panel.
type ListEdit[T any] struct {
	Op    ListOp `json:"op"`
	Index int    `json:"index"`
	Field string `json:"field"`
	Value string `json:"value"`
	Item  T      `json:"item"`
}

func ApplyListEdit[T any, PT interface {
	*T
	FieldSetter
}](items *[]T, edit ListEdit[T]) error {
	list := NewEditableList[T, PT](items)
	switch edit.Op {
	case ListOpAdd:
		list.Add(edit.Item)
		return nil
	case ListOpUpdate:
		return list.UpdateField(edit.Index, edit.Field, edit.Value)
	case ListOpRemove:
		return list.Remove(edit.Index)
	}
	return apperrors.ErrBadRequest(fmt.Sprintf("unknown list operation %q", edit.Op))
}

func unknownField(field string) error {
	return fmt.Errorf("%q: %w", field, apperrors.ErrUnknownField)
}
