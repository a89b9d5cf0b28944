package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-ip listen IP (combined with -port when -a is not given)
//	-port listen port
//	-dir server working directory (database and schema live here)
//	-db bbolt database file
//	-schema player data catalog (YAML)
//	-cache-schema reuse the parsed catalog until the file changes
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-workers number of password hashing workers
func ParseFlags() (*StructuredConfig, error) {
	return parseFlagSet(flag.CommandLine, os.Args[1:])
}

func parseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var ip string
	var port int
	var dir string
	var dbFile string
	var schemaFile string
	var cacheSchema bool
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashWorkers int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&ip, "ip", "", "Listen IP")
	fs.IntVar(&port, "port", 0, "Listen port")
	fs.StringVar(&dir, "dir", "", "Server working directory")
	fs.StringVar(&dbFile, "db", "", "Database file")
	fs.StringVar(&schemaFile, "schema", "", "Player data schema file")
	fs.BoolVar(&cacheSchema, "cache-schema", false, "Cache the schema until the file changes")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&hashWorkers, "hash-workers", 0, "Password hashing workers")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	httpAddress := serverAddress.String()
	if httpAddress == "" && (ip != "" || port != 0) {
		if ip == "" {
			ip = "0.0.0.0"
		}
		if port == 0 {
			port = 3145
		}
		httpAddress = net.JoinHostPort(ip, strconv.Itoa(port))
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Hashing: Hashing{
			Workers: hashWorkers,
		},
		Storage: Storage{
			Dir:         dir,
			DBFile:      dbFile,
			SchemaFile:  schemaFile,
			CacheSchema: cacheSchema,
		},
		Server: Server{
			HTTPAddress:    httpAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
