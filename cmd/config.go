package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	LobAPIKey          string
	AdminPassword      string
	AdminSessionSecret string
	DevMode            bool
}
