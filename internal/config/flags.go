package config

import (
	"errors"
	"flag"
	"net"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-static static asset directory
//	-image durable image slot path
//	-image-quota durable image quota in bytes (0 = no cap)
//	-cache-dir offline asset cache root
//	-bible-api-key upstream scripture API key
//	-bible-api-url upstream scripture API base URL
//	-server-url proxy server base URL (client)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var staticDir string
	var imagePath string
	var imageQuota int64
	var cacheDir string
	var bibleAPIKey string
	var bibleAPIURL string
	var serverURL string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&staticDir, "static", "", "Static asset directory")
	flag.StringVar(&imagePath, "image", "", "Durable image slot path")
	flag.Int64Var(&imageQuota, "image-quota", 0, "Durable image quota in bytes (0 = no cap)")
	flag.StringVar(&cacheDir, "cache-dir", "", "Offline asset cache root")
	flag.StringVar(&bibleAPIKey, "bible-api-key", "", "Upstream scripture API key")
	flag.StringVar(&bibleAPIURL, "bible-api-url", "", "Upstream scripture API base URL")
	flag.StringVar(&serverURL, "server-url", "", "Proxy server base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			ImagePath:       imagePath,
			ImageQuotaBytes: imageQuota,
			CacheDir:        cacheDir,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
		},
		BibleAPI: BibleAPI{
			Key:     bibleAPIKey,
			BaseURL: bibleAPIURL,
		},
		Client: Client{
			ServerURL: serverURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless
// host is "localhost", and returns an error if the format or values are
// invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
