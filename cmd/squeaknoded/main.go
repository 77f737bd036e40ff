package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	flags "github.com/jessevdk/go-flags"
	"google.golang.org/grpc"

	"github.com/jzernik/squeaknode/adminrpc"
	"github.com/jzernik/squeaknode/bitcoinrpc"
	"github.com/jzernik/squeaknode/build"
	"github.com/jzernik/squeaknode/config"
	"github.com/jzernik/squeaknode/controller"
	"github.com/jzernik/squeaknode/lightningrpc"
	"github.com/jzernik/squeaknode/netmgr"
	"github.com/jzernik/squeaknode/peer"
	"github.com/jzernik/squeaknode/store"
)

// main constructs every subsystem in the same order the original
// implementation's squeak_node.py does: network params, database,
// lightning client, bitcoin client, core controller, network manager,
// then background workers — see SPEC_FULL.md §5.
func main() {
	if err := run(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	if err := build.InitLogRotator(filepath.Join(cfg.DataDir, "logs", "squeaknoded.log"), 10*1024, 3); err != nil {
		return err
	}

	params, err := cfg.ChainParams()
	if err != nil {
		return err
	}

	db, err := store.Open(filepath.Join(cfg.DataDir, "squeaknode.db"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	lnd, err := lightningrpc.New(lightningrpc.Config{
		Host:        cfg.Lnd.Host,
		TLSCertPath: cfg.Lnd.TLSCertPath,
		MacaroonHex: readMacaroonHex(cfg.Lnd.MacaroonPath),
	})
	if err != nil {
		return fmt.Errorf("connect to lnd: %w", err)
	}
	defer lnd.Close()

	btc, err := bitcoinrpc.New(bitcoinrpc.Config{
		Host: fmt.Sprintf("%s:%d", cfg.Bitcoin.RPCHost, cfg.Bitcoin.RPCPort),
		User: cfg.Bitcoin.RPCUser,
		Pass: cfg.Bitcoin.RPCPass,
	})
	if err != nil {
		return fmt.Errorf("connect to bitcoin node: %w", err)
	}
	defer btc.Close()

	ctl := controller.New(controller.Config{
		Store:            db,
		Bitcoin:          btc,
		Lightning:        lnd,
		Params:           params,
		ExternalAddress:  cfg.Node.ExternalAddress,
		DefaultPeerPort:  cfg.Node.PeerPort,
		DefaultPriceMsat: cfg.Node.PriceMsat,
		RetentionS:       cfg.Node.SqueakRetentionS,
	})

	network, err := netmgr.New(netmgr.Config{
		Magic:            uint32(params.Net),
		ListenAddrs:      []string{fmt.Sprintf(":%d", cfg.Node.PeerPort)},
		MaxInboundPeers:  defaultMaxInboundPeers,
		MaxOutboundPeers: defaultMaxOutboundPeers,
		OnMessage:        ctl.HandleMessage,
		OnConnect:        func(p *peer.Peer) {},
		OnDisconnect:     func(p *peer.Peer) {},
	})
	if err != nil {
		return fmt.Errorf("start network manager: %w", err)
	}
	ctl.SetNetwork(network)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := ctl.Start(ctx); err != nil {
		return fmt.Errorf("start controller: %w", err)
	}
	defer ctl.Stop()

	if cfg.Admin.RPCEnabled {
		adminLis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Admin.RPCHost, cfg.Admin.RPCPort))
		if err != nil {
			return fmt.Errorf("listen on admin rpc address: %w", err)
		}
		grpcServer := grpc.NewServer()
		adminrpc.RegisterAdminServer(grpcServer, controller.NewAdminServer(ctl))
		go func() {
			if err := grpcServer.Serve(adminLis); err != nil {
				build.Log().Errorf("admin rpc server stopped: %v", err)
			}
		}()
		defer grpcServer.Stop()
		build.Log().Infof("admin rpc listening on %s:%d", cfg.Admin.RPCHost, cfg.Admin.RPCPort)
	}

	build.Log().Infof("squeaknoded listening on peer port %d, network %s", cfg.Node.PeerPort, ctl.GetNetwork())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	return nil
}

const (
	defaultMaxInboundPeers  = 40
	defaultMaxOutboundPeers = 8
)

func readMacaroonHex(path string) string {
	if path == "" {
		return ""
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", data)
}
