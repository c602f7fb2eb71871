package oracle

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	go_ora "github.com/sijms/go-ora/v2"
	"golang.org/x/crypto/ssh/terminal"
)

const (
	driverName = "oracle"

	// errCodeInvalidCredentials is the Oracle error raised on wrong user/password.
	errCodeInvalidCredentials = "ORA-01017"

	// sessionDateFormat makes DATE columns render the same way regardless of client NLS settings.
	sessionDateFormat = "ALTER SESSION SET nls_date_format = 'YYYY-MM-DD HH24:MI:SS'"
)

// Config contains connection settings to Oracle specified by user.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Service  string
}

// NewConfig checks connection parameters passed by user and creates config.
func NewConfig(host string, port int, user string, service string) (Config, error) {
	if host == "" {
		host = "127.0.0.1"
	}
	if port == 0 {
		port = 1521
	}
	if service == "" {
		return Config{}, fmt.Errorf("service name is not specified")
	}

	return Config{
		Host:    host,
		Port:    port,
		User:    user,
		Service: service,
	}, nil
}

// url assembles go-ora connection URL from config.
func (c Config) url() string {
	return go_ora.BuildUrl(c.Host, c.Port, c.Service, c.User, c.Password, nil)
}

// DB describes connection to Oracle database.
type DB struct {
	Config Config
	Conn   *sqlx.DB
}

// Connect connects to Oracle using provided config and returns DB object.
// When credentials are rejected and no password has been specified, ask
// the password interactively and retry once.
func Connect(config Config) (*DB, error) {
	db, err := connect(config)
	if err == nil {
		return db, nil
	}

	if !strings.Contains(err.Error(), errCodeInvalidCredentials) || config.Password != "" {
		return nil, err
	}

	fmt.Printf("Password for user %s: ", config.User)
	password, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		return nil, err
	}

	config.Password = string(password)
	return connect(config)
}

// connect opens connection, verifies it and adjusts session settings.
func connect(config Config) (*DB, error) {
	conn, err := sqlx.Open(driverName, config.url())
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err := conn.Exec(sessionDateFormat); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &DB{
		Config: config,
		Conn:   conn,
	}, nil
}

// Exec is a wrapper over sqlx.Exec.
func (db *DB) Exec(query string, args ...interface{}) error {
	_, err := db.Conn.Exec(query, args...)
	return err
}

// QueryRow is a wrapper over sqlx.QueryRow.
func (db *DB) QueryRow(query string, args ...interface{}) *sqlx.Row {
	return db.Conn.QueryRowx(query, args...)
}

// Query is a wrapper over sqlx.Queryx.
func (db *DB) Query(query string, args ...interface{}) (*sqlx.Rows, error) {
	return db.Conn.Queryx(query, args...)
}

// Select is a wrapper over sqlx.Select, scans all rows into dest slice of structs.
func (db *DB) Select(dest interface{}, query string, args ...interface{}) error {
	return db.Conn.Select(dest, query, args...)
}

// Get is a wrapper over sqlx.Get, scans a single row into dest struct.
func (db *DB) Get(dest interface{}, query string, args ...interface{}) error {
	return db.Conn.Get(dest, query, args...)
}

// Close closes connection to Oracle.
func (db *DB) Close() {
	if err := db.Conn.Close(); err != nil {
		fmt.Printf("close connection failed: %s; ignore\n", err)
	}
}
