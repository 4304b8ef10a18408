package models

import "fmt"

// ResourceKind is the closed set of ownable resources
type ResourceKind int

const (
	ResourcePost ResourceKind = iota + 1
	ResourceComment
)

type resourceBinding struct {
	name        string
	table       string
	ownerColumn string
}

var resourceBindings = map[ResourceKind]resourceBinding{
	ResourcePost:    {name: "post", table: "posts", ownerColumn: "user_id"},
	ResourceComment: {name: "comment", table: "comments", ownerColumn: "user_id"},
}

func (k ResourceKind) binding() resourceBinding {
	b, ok := resourceBindings[k]
	if !ok {
		panic(fmt.Sprintf("unknown resource kind %d", int(k)))
	}
	return b
}

// Name is the API name of the kind ("post" or "comment")
func (k ResourceKind) Name() string { return k.binding().name }

// Table is the table holding rows of this kind
func (k ResourceKind) Table() string { return k.binding().table }

// OwnerColumn is the column holding the owning user id
func (k ResourceKind) OwnerColumn() string { return k.binding().ownerColumn }

func (k ResourceKind) String() string { return k.Name() }
