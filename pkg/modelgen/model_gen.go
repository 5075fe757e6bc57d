package modelgen

// >>>>>>>>>>>> this describes the Go struct generated for one model >>>>>>>>>>>>>>>

type Object struct {
	Name    string  // struct type's name
	Comment string  // struct type's comment
	Fields  []Field // fields of struct type, in attribute order
}

type Field struct {
	Name    string            // field name
	Type    Type              // field Type
	Tags    map[string]string // tags of this field
	Comment string            // comment on this field
}

type Type struct {
	Name    string // type Name, unused for slices
	Domain  string // package path
	NilAble bool   // is NilAble, we will use pointer to represent NilAble type
	Elem    *Type  // element type; non-nil means a slice
}
