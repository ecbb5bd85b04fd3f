package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	RackZones         string
	RackRows          string
	RackColumns       string
	ScanSessionTTLSec string
}
