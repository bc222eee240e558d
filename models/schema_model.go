package models

// ObjectType tags every SchemaModel element with the catalog it came from, so a
// tree built from any engine can be rendered the same way.
type ObjectType string

// Schema object categories.
const (
	ObjectSchema   ObjectType = "schema"
	ObjectTable    ObjectType = "table"
	ObjectView     ObjectType = "view"
	ObjectFunction ObjectType = "function"
	ObjectTrigger  ObjectType = "trigger"
	ObjectSequence ObjectType = "sequence"
)

// SchemaObject is one entry of a SchemaModel collection.
type SchemaObject struct {
	Name   string     `json:"name"`
	Schema string     `json:"schema,omitempty"`
	Table  string     `json:"table,omitempty"` // Owning table, triggers only
	Type   ObjectType `json:"type"`
}

// SchemaModel is the unified structure listing of one database.
type SchemaModel struct {
	Schemas   []SchemaObject `json:"schemas"`
	Tables    []SchemaObject `json:"tables"`
	Views     []SchemaObject `json:"views"`
	Functions []SchemaObject `json:"functions"`
	Triggers  []SchemaObject `json:"triggers"`
	Sequences []SchemaObject `json:"sequences"`
}

// NewSchemaModel returns a model whose collections are empty, never nil.
func NewSchemaModel() *SchemaModel {
	return &SchemaModel{
		Schemas:   []SchemaObject{},
		Tables:    []SchemaObject{},
		Views:     []SchemaObject{},
		Functions: []SchemaObject{},
		Triggers:  []SchemaObject{},
		Sequences: []SchemaObject{},
	}
}

// AddSchema appends a schema entry.
func (m *SchemaModel) AddSchema(name string) {
	m.Schemas = append(m.Schemas, SchemaObject{Name: name, Type: ObjectSchema})
}

// AddTable appends a base table entry.
func (m *SchemaModel) AddTable(schema, name string) {
	m.Tables = append(m.Tables, SchemaObject{Name: name, Schema: schema, Type: ObjectTable})
}

// AddView appends a view entry.
func (m *SchemaModel) AddView(schema, name string) {
	m.Views = append(m.Views, SchemaObject{Name: name, Schema: schema, Type: ObjectView})
}

// AddFunction appends a function or routine entry.
func (m *SchemaModel) AddFunction(schema, name string) {
	m.Functions = append(m.Functions, SchemaObject{Name: name, Schema: schema, Type: ObjectFunction})
}

// AddTrigger appends a trigger entry together with the table it fires on.
func (m *SchemaModel) AddTrigger(schema, table, name string) {
	m.Triggers = append(m.Triggers, SchemaObject{Name: name, Schema: schema, Table: table, Type: ObjectTrigger})
}

// AddSequence appends a sequence entry.
func (m *SchemaModel) AddSequence(schema, name string) {
	m.Sequences = append(m.Sequences, SchemaObject{Name: name, Schema: schema, Type: ObjectSequence})
}

// TableDetail aggregates everything known about a single table.
type TableDetail struct {
	Name        string             `json:"name"`
	Schema      string             `json:"schema"`
	Owner       string             `json:"owner"`
	Tablespace  string             `json:"tablespace"`
	Comment     string             `json:"comment"`
	Columns     []ColumnDetail     `json:"columns"`
	Constraints []ConstraintDetail `json:"constraints"`
	Indexes     []IndexDetail      `json:"indexes"`
	Policies    []PolicyDetail     `json:"policies"`
	Triggers    []TriggerDetail    `json:"triggers"`
}

// ColumnDetail describes one column of a table.
type ColumnDetail struct {
	Name         string  `json:"name"`
	DataType     string  `json:"dataType"`
	Length       *int64  `json:"length"`
	Nullable     bool    `json:"nullable"`
	IsPrimaryKey bool    `json:"isPrimaryKey"`
	DefaultValue *string `json:"defaultValue"`
	Comment      string  `json:"comment,omitempty"`
}

// ConstraintDetail describes a table constraint. Definition is engine text
// (pg_get_constraintdef) where the engine provides one.
type ConstraintDetail struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Definition string `json:"definition,omitempty"`
}

// IndexDetail describes an index. Columns is filled for engines that list index
// columns row by row (SHOW INDEX, sys.index_columns, Mongo key documents).
type IndexDetail struct {
	Name       string   `json:"name"`
	Definition string   `json:"definition,omitempty"`
	Columns    []string `json:"columns"`
	IsUnique   bool     `json:"isUnique"`
	IsPrimary  bool     `json:"isPrimary"`
}

// PolicyDetail is a PostgreSQL row-level-security policy.
type PolicyDetail struct {
	Name       string   `json:"name"`
	Command    string   `json:"command"`
	Permissive bool     `json:"permissive"`
	Roles      []string `json:"roles"`
	Using      string   `json:"using,omitempty"`
	WithCheck  string   `json:"withCheck,omitempty"`
}

// TriggerDetail describes a trigger attached to the table.
type TriggerDetail struct {
	Name       string `json:"name"`
	Timing     string `json:"timing,omitempty"`
	Event      string `json:"event,omitempty"`
	Definition string `json:"definition,omitempty"`
	Enabled    bool   `json:"enabled"`
}

// NewTableDetail returns a detail whose collections are empty, never nil.
func NewTableDetail(schema, name string) *TableDetail {
	d := &TableDetail{Name: name, Schema: schema}
	d.Normalize()
	return d
}

// Normalize replaces nil collections with empty ones so the JSON shape is stable.
func (d *TableDetail) Normalize() {
	if d.Columns == nil {
		d.Columns = []ColumnDetail{}
	}
	if d.Constraints == nil {
		d.Constraints = []ConstraintDetail{}
	}
	if d.Indexes == nil {
		d.Indexes = []IndexDetail{}
	}
	for i := range d.Indexes {
		if d.Indexes[i].Columns == nil {
			d.Indexes[i].Columns = []string{}
		}
	}
	if d.Policies == nil {
		d.Policies = []PolicyDetail{}
	}
	for i := range d.Policies {
		if d.Policies[i].Roles == nil {
			d.Policies[i].Roles = []string{}
		}
	}
	if d.Triggers == nil {
		d.Triggers = []TriggerDetail{}
	}
}
