package domain

import "time"

// SchemaInfo identifies a schema and its owner.
type SchemaInfo struct {
	SchemaName  string `json:"schema_name"`
	SchemaOwner string `json:"schema_owner"`
}

// TableInfo describes a table or view within a schema. RowCount is computed
// on demand and is zero when counting was skipped or failed.
type TableInfo struct {
	TableName   string `json:"table_name"`
	TableType   string `json:"table_type"`
	TableSchema string `json:"table_schema"`
	RowCount    int64  `json:"row_count"`
}

// ColumnInfo describes a single column. Length/precision/scale and default
// are nil when not applicable to the column's type.
type ColumnInfo struct {
	ColumnName             string  `json:"column_name"`
	DataType               string  `json:"data_type"`
	IsNullable             bool    `json:"is_nullable"`
	ColumnDefault          *string `json:"column_default"`
	CharacterMaximumLength *int    `json:"character_maximum_length"`
	NumericPrecision       *int    `json:"numeric_precision"`
	NumericScale           *int    `json:"numeric_scale"`
	OrdinalPosition        int     `json:"ordinal_position"`
}

// ConstraintInfo is one (constraint, column) pair. Multi-column constraints
// expand into one entry per column and are not deduplicated.
type ConstraintInfo struct {
	ConstraintName string `json:"constraint_name"`
	ConstraintType string `json:"constraint_type"`
	ColumnName     string `json:"column_name"`
}

// IndexInfo holds an index name and its definition verbatim from the engine.
type IndexInfo struct {
	IndexName       string `json:"index_name"`
	IndexDefinition string `json:"index_definition"`
}

// SchemaDetails combines schema identity with its tables and row counts.
type SchemaDetails struct {
	SchemaInfo  SchemaInfo  `json:"schema_info"`
	Tables      []TableInfo `json:"tables"`
	TotalTables int         `json:"total_tables"`
}

// TableDetails is the full structural description of one table.
type TableDetails struct {
	TableInfo   TableInfo        `json:"table_info"`
	Columns     []ColumnInfo     `json:"columns"`
	Constraints []ConstraintInfo `json:"constraints"`
	Indexes     []IndexInfo      `json:"indexes"`
	RowCount    int64            `json:"row_count"`
}

// DatabaseOverview lists every non-system schema in the database.
type DatabaseOverview struct {
	DatabaseName     string       `json:"database_name"`
	Schemas          []SchemaInfo `json:"schemas"`
	TotalSchemas     int          `json:"total_schemas"`
	ConnectionStatus string       `json:"connection_status"`
	LastUpdated      time.Time    `json:"last_updated"`
}

// TableStatistics aggregates table counts and row totals for one schema.
type TableStatistics struct {
	SchemaName          string         `json:"schema_name"`
	TotalTables         int            `json:"total_tables"`
	TotalRows           int64          `json:"total_rows"`
	TableTypes          map[string]int `json:"table_types"`
	AverageRowsPerTable float64        `json:"average_rows_per_table"`
}

// HealthStatus reports database reachability.
type HealthStatus struct {
	Status            string    `json:"status"`
	DatabaseConnected bool      `json:"database_connected"`
	Message           string    `json:"message"`
	Timestamp         time.Time `json:"timestamp"`
}
