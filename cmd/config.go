package cmd

// Storage driver names accepted in Config.StoreDriver.
const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Config carries the service configuration read from the environment.
// StoreDriver selects the persistence backend: "file" keeps the order
// collection in a local JSON snapshot, "postgres" uses a relational store.
type Config struct {
	HTTPPort    string
	StoreDriver string
	OrdersFile  string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
}
