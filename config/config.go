// Package config defines squeaknode's on-disk/flag configuration surface,
// per §6 ("Environment"), parsed with go-flags the way the teacher's own
// daemon configuration is parsed.
package config

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	flags "github.com/jessevdk/go-flags"

	"github.com/jzernik/squeaknode/lncfg"
)

const (
	defaultPeerPort       = 18555
	defaultAdminRPCPort   = 18556
	defaultWebAdminPort   = 12994
	defaultMaxSqueaks     = 10000
	defaultPriceMsat      = 1000
	defaultRetentionS     = 7 * 24 * 60 * 60
	defaultOfferDeletionS = 60
)

// BitcoinConfig configures the bitcoin adapter connection, per §6.
type BitcoinConfig struct {
	RPCHost           string `long:"rpchost" description:"Host of the backing bitcoind/btcd RPC server"`
	RPCPort           int    `long:"rpcport" description:"Port of the backing bitcoind/btcd RPC server"`
	RPCUser           string `long:"rpcuser" description:"RPC username"`
	RPCPass           string `long:"rpcpass" description:"RPC password"`
	RPCUseSSL         bool   `long:"rpcusessl" description:"Use TLS for the RPC connection"`
	RPCSSLCert        string `long:"rpcsslcert" description:"Path to the RPC server's TLS certificate"`
}

// LndConfig configures the lightning adapter connection, per §6.
type LndConfig struct {
	Host           string `long:"host" description:"host:port of the external lnd-compatible node's gRPC listener"`
	RPCPort        int    `long:"rpcport" description:"gRPC port, if not already part of Host"`
	TLSCertPath    string `long:"tlscertpath" description:"Path to the node's TLS certificate"`
	MacaroonPath   string `long:"macaroonpath" description:"Path to the node's admin macaroon"`
}

// NodeConfig configures squeaknode's own periodic workers and limits, per
// §6.
type NodeConfig struct {
	SubscribeInvoicesRetryS int64  `long:"subscribeinvoicesretrys" description:"Seconds between invoice-subscription reconnect attempts (not read: the invoice subscription is opened once and not reconnected)"`
	SqueakDeletionIntervalS int64  `long:"squeakdeletionintervals" description:"Seconds between retention sweeps (not read: the retention sweep runs hourly)"`
	OfferDeletionIntervalS  int64  `long:"offerdeletionintervals" description:"Seconds between offer-expiry sweeps (not read: the offer-expiry sweep runs every minute)"`
	SqueakRetentionS        int64  `long:"squeakretentions" description:"Seconds an unliked, unowned squeak is retained"`
	PriceMsat               int64  `long:"pricemsat" description:"Default millisatoshi price for a squeak's decryption key"`
	MaxSqueaks              int    `long:"maxsqueaks" description:"Soft cap on stored squeaks (not read: retention sweeps do not depend on it)"`
	PeerPort                uint16 `long:"peerport" description:"Port this node listens for peer connections on"`
	ExternalAddress         string `long:"externaladdress" description:"Address advertised to peers for inbound connections"`
}

// AdminConfig configures the admin RPC surface, per §6.
type AdminConfig struct {
	RPCEnabled bool   `long:"rpcenabled" description:"Enable the admin RPC server"`
	RPCHost    string `long:"rpchost" description:"Admin RPC bind host"`
	RPCPort    int    `long:"rpcport" description:"Admin RPC bind port"`
}

// WebAdminConfig configures the optional web UI, per §6.
type WebAdminConfig struct {
	Enabled       bool   `long:"enabled" description:"Enable the web admin UI"`
	Host          string `long:"host" description:"Web admin bind host"`
	Port          int    `long:"port" description:"Web admin bind port"`
	Username      string `long:"username" description:"Web admin basic-auth username"`
	Password      string `long:"password" description:"Web admin basic-auth password"`
	UseSSL        bool   `long:"usessl" description:"Serve the web admin UI over TLS"`
	LoginDisabled bool   `long:"logindisabled" description:"Disable the login screen (local-only deployments)"`
	AllowCORS     bool   `long:"allowcors" description:"Allow cross-origin requests to the web admin API"`
}

// Config is squeaknode's top-level configuration, per §6 ("Environment").
type Config struct {
	Network  string           `long:"network" description:"mainnet, testnet, signet or regtest"`
	DataDir  string           `long:"datadir" description:"Directory holding the bbolt database file"`
	Bitcoin  *BitcoinConfig   `group:"Bitcoin" namespace:"bitcoin"`
	Lnd      *LndConfig       `group:"Lnd" namespace:"lnd"`
	Node     *NodeConfig      `group:"Node" namespace:"node"`
	Admin    *AdminConfig     `group:"Admin" namespace:"admin"`
	WebAdmin *WebAdminConfig  `group:"WebAdmin" namespace:"webadmin"`
}

// DefaultConfig returns a Config populated with the same defaults the
// original implementation shipped, before flag/file overrides are
// applied.
func DefaultConfig() *Config {
	return &Config{
		Network: "mainnet",
		DataDir: ".",
		Bitcoin: &BitcoinConfig{
			RPCHost: "127.0.0.1",
			RPCPort: 8332,
		},
		Lnd: &LndConfig{
			Host: "127.0.0.1:10009",
		},
		Node: &NodeConfig{
			SubscribeInvoicesRetryS: 5,
			SqueakDeletionIntervalS: 3600,
			OfferDeletionIntervalS:  defaultOfferDeletionS,
			SqueakRetentionS:        defaultRetentionS,
			PriceMsat:               defaultPriceMsat,
			MaxSqueaks:              defaultMaxSqueaks,
			PeerPort:                defaultPeerPort,
		},
		Admin: &AdminConfig{
			RPCHost: "127.0.0.1",
			RPCPort: defaultAdminRPCPort,
		},
		WebAdmin: &WebAdminConfig{
			Host: "127.0.0.1",
			Port: defaultWebAdminPort,
		},
	}
}

// Load parses args (typically os.Args[1:]) over DefaultConfig's values.
func Load(args []string) (*Config, error) {
	cfg := DefaultConfig()
	parser := flags.NewParser(cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field invariants not expressible via go-flags
// struct tags alone.
func (c *Config) Validate() error {
	if _, err := c.ChainParams(); err != nil {
		return err
	}
	if c.Node.ExternalAddress != "" {
		if _, err := lncfg.ParseAddressString(c.Node.ExternalAddress, fmt.Sprintf("%d", defaultPeerPort), nil); err != nil {
			return fmt.Errorf("config: invalid node.externaladdress: %w", err)
		}
	}
	return nil
}

// ChainParams resolves Network to a *chaincfg.Params. Network selection is
// threaded through construction rather than mutating chaincfg's package
// globals (REDESIGN FLAG — no chaincfg.SelectParams).
func (c *Config) ChainParams() (*chaincfg.Params, error) {
	switch c.Network {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		// chaincfg has no built-in signet params in this vintage; regtest
		// params are the closest stand-in (same address version bytes).
		return &chaincfg.RegressionNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("config: unknown network %q", c.Network)
	}
}
