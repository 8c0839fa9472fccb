package sql

import "fmt"

// Dialect selects the SQL flavour of the warehouse behind the repository.
type Dialect string

const (
	DuckDB     Dialect = "duckdb"
	Snowflake  Dialect = "snowflake"
	Databricks Dialect = "databricks"
)

func ParseDialect(name string) (Dialect, error) {
	switch d := Dialect(name); d {
	case DuckDB, Snowflake, Databricks:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported sql dialect %q", name)
	}
}

// DaysBetween returns an expression for the fractional number of days from
// one timestamp column to another.
func (d Dialect) DaysBetween(from, to string) string {
	switch d {
	case Snowflake:
		return fmt.Sprintf("DATEDIFF(second, %s, %s) / 86400.0", from, to)
	case Databricks:
		return fmt.Sprintf("(unix_timestamp(%s) - unix_timestamp(%s)) / 86400.0", to, from)
	default:
		return fmt.Sprintf("date_diff('second', %s, %s) / 86400.0", from, to)
	}
}

// AddDays returns an expression shifting a timestamp column by whole days.
func (d Dialect) AddDays(column string, days int) string {
	switch d {
	case Snowflake:
		return fmt.Sprintf("DATEADD(day, %d, %s)", days, column)
	case Databricks:
		return fmt.Sprintf("timestampadd(DAY, %d, %s)", days, column)
	default:
		return fmt.Sprintf("(%s + INTERVAL %d DAY)", column, days)
	}
}
