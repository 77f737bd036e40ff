package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
	"github.com/urfave/cli"
	"google.golang.org/grpc"

	"github.com/jzernik/squeaknode/adminrpc"
)

const defaultRPCHostPort = "localhost:18556"

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[squeakctl] %v\n", err)
	os.Exit(1)
}

func printRespJSON(resp proto.Message) {
	m := &jsonpb.Marshaler{EmitDefaults: true, Indent: "    "}
	out, err := m.MarshalToString(resp)
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}
	fmt.Println(out)
}

func getClient(ctx *cli.Context) (adminrpc.AdminClient, func()) {
	conn, err := grpc.Dial(ctx.GlobalString("rpcserver"), grpc.WithInsecure())
	if err != nil {
		fatal(fmt.Errorf("dial admin rpc: %w", err))
	}
	return adminrpc.NewAdminClient(conn), func() { conn.Close() }
}

func actionDecorator(f func(*cli.Context) error) func(*cli.Context) error {
	return func(c *cli.Context) error {
		if err := f(c); err != nil {
			return err
		}
		return nil
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "squeakctl"
	app.Usage = "control plane for squeaknoded"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rpcserver",
			Value: defaultRPCHostPort,
			Usage: "host:port of the admin rpc server",
		},
	}
	app.Commands = []cli.Command{
		createSigningProfileCommand,
		importSigningProfileCommand,
		createContactProfileCommand,
		getProfilesCommand,
		deleteSqueakProfileCommand,
		makeSqueakCommand,
		getSqueakEntryCommand,
		getTimelineCommand,
		likeSqueakCommand,
		unlikeSqueakCommand,
		deleteSqueakCommand,
		createPeerCommand,
		getPeersCommand,
		connectPeerCommand,
		disconnectPeerCommand,
		getConnectedPeersCommand,
		downloadOffersCommand,
		payOfferCommand,
		getNetworkCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

var createSigningProfileCommand = cli.Command{
	Name:      "createsigningprofile",
	Category:  "Profiles",
	Usage:     "Create a new signing profile.",
	ArgsUsage: "name",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		resp, err := client.CreateSigningProfile(context.Background(), &adminrpc.CreateSigningProfileRequest{
			ProfileName: ctx.Args().First(),
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var importSigningProfileCommand = cli.Command{
	Name:      "importsigningprofile",
	Category:  "Profiles",
	Usage:     "Import a signing profile from a hex-encoded private key.",
	ArgsUsage: "name privkey_hex",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		privKey, err := hex.DecodeString(ctx.Args().Get(1))
		if err != nil {
			return fmt.Errorf("decode private key: %w", err)
		}
		resp, err := client.ImportSigningProfile(context.Background(), &adminrpc.ImportSigningProfileRequest{
			ProfileName: ctx.Args().First(),
			PrivateKey:  privKey,
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var createContactProfileCommand = cli.Command{
	Name:      "createcontactprofile",
	Category:  "Profiles",
	Usage:     "Create a follow-only contact profile.",
	ArgsUsage: "name address",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		resp, err := client.CreateContactProfile(context.Background(), &adminrpc.CreateContactProfileRequest{
			ProfileName: ctx.Args().First(),
			Address:     ctx.Args().Get(1),
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var getProfilesCommand = cli.Command{
	Name:     "getprofiles",
	Category: "Profiles",
	Usage:    "List every profile.",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		resp, err := client.GetProfiles(context.Background(), &adminrpc.Empty{})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var deleteSqueakProfileCommand = cli.Command{
	Name:      "deletesqueakprofile",
	Category:  "Profiles",
	Usage:     "Delete a profile by ID.",
	ArgsUsage: "profile_id",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		id, err := parseUint(ctx.Args().First())
		if err != nil {
			return err
		}
		resp, err := client.DeleteSqueakProfile(context.Background(), &adminrpc.DeleteSqueakProfileRequest{ProfileId: id})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var makeSqueakCommand = cli.Command{
	Name:      "makesqueak",
	Category:  "Squeaks",
	Usage:     "Author and store a new squeak.",
	ArgsUsage: "profile_id content block_height",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		profileID, err := parseUint(ctx.Args().First())
		if err != nil {
			return err
		}
		blockHeight, err := parseInt32(ctx.Args().Get(2))
		if err != nil {
			return err
		}
		resp, err := client.MakeSqueak(context.Background(), &adminrpc.MakeSqueakRequest{
			ProfileId:   profileID,
			Content:     ctx.Args().Get(1),
			BlockHeight: blockHeight,
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var getSqueakEntryCommand = cli.Command{
	Name:      "getsqueakentry",
	Category:  "Squeaks",
	Usage:     "Fetch a single squeak entry by hash.",
	ArgsUsage: "hash_hex",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		hash, err := hex.DecodeString(ctx.Args().First())
		if err != nil {
			return fmt.Errorf("decode hash: %w", err)
		}
		resp, err := client.GetSqueakEntry(context.Background(), &adminrpc.GetSqueakEntryRequest{Hash: hash})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var getTimelineCommand = cli.Command{
	Name:     "gettimeline",
	Category: "Squeaks",
	Usage:    "List squeaks from followed profiles.",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "limit", Value: 50, Usage: "max entries to return"},
	},
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		resp, err := client.GetTimelineSqueakEntries(context.Background(), &adminrpc.GetTimelineRequest{
			Limit: int32(ctx.Int("limit")),
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var likeSqueakCommand = cli.Command{
	Name:      "likesqueak",
	Category:  "Squeaks",
	Usage:     "Like a squeak by hash.",
	ArgsUsage: "hash_hex",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		hash, err := hex.DecodeString(ctx.Args().First())
		if err != nil {
			return fmt.Errorf("decode hash: %w", err)
		}
		resp, err := client.LikeSqueak(context.Background(), &adminrpc.LikeSqueakRequest{Hash: hash})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var unlikeSqueakCommand = cli.Command{
	Name:      "unlikesqueak",
	Category:  "Squeaks",
	Usage:     "Unlike a squeak by hash.",
	ArgsUsage: "hash_hex",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		hash, err := hex.DecodeString(ctx.Args().First())
		if err != nil {
			return fmt.Errorf("decode hash: %w", err)
		}
		resp, err := client.UnlikeSqueak(context.Background(), &adminrpc.UnlikeSqueakRequest{Hash: hash})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var deleteSqueakCommand = cli.Command{
	Name:      "deletesqueak",
	Category:  "Squeaks",
	Usage:     "Delete a squeak by hash.",
	ArgsUsage: "hash_hex",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		hash, err := hex.DecodeString(ctx.Args().First())
		if err != nil {
			return fmt.Errorf("decode hash: %w", err)
		}
		resp, err := client.DeleteSqueak(context.Background(), &adminrpc.DeleteSqueakRequest{Hash: hash})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var createPeerCommand = cli.Command{
	Name:      "createpeer",
	Category:  "Peers",
	Usage:     "Save a new peer record.",
	ArgsUsage: "name host port",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		port, err := parseUint32(ctx.Args().Get(2))
		if err != nil {
			return err
		}
		resp, err := client.CreatePeer(context.Background(), &adminrpc.CreatePeerRequest{
			PeerName: ctx.Args().First(),
			Address:  &adminrpc.PeerAddressMsg{Host: ctx.Args().Get(1), Port: port},
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var getPeersCommand = cli.Command{
	Name:     "getpeers",
	Category: "Peers",
	Usage:    "List every saved peer.",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		resp, err := client.GetPeers(context.Background(), &adminrpc.Empty{})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var connectPeerCommand = cli.Command{
	Name:      "connectpeer",
	Category:  "Peers",
	Usage:     "Dial and track a live session with a peer.",
	ArgsUsage: "host port",
	Flags: []cli.Flag{
		cli.BoolFlag{Name: "perm", Usage: "keep reconnecting if the session drops"},
	},
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		port, err := parseUint32(ctx.Args().Get(1))
		if err != nil {
			return err
		}
		resp, err := client.ConnectPeer(context.Background(), &adminrpc.ConnectPeerRequest{
			Address:   &adminrpc.PeerAddressMsg{Host: ctx.Args().First(), Port: port},
			Permanent: ctx.Bool("perm"),
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var disconnectPeerCommand = cli.Command{
	Name:      "disconnectpeer",
	Category:  "Peers",
	Usage:     "Tear down a live session with a peer.",
	ArgsUsage: "host port",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		port, err := parseUint32(ctx.Args().Get(1))
		if err != nil {
			return err
		}
		resp, err := client.DisconnectPeer(context.Background(), &adminrpc.DisconnectPeerRequest{
			Address: &adminrpc.PeerAddressMsg{Host: ctx.Args().First(), Port: port},
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var getConnectedPeersCommand = cli.Command{
	Name:     "getconnectedpeers",
	Category: "Peers",
	Usage:    "List peers with a live session.",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		resp, err := client.GetConnectedPeers(context.Background(), &adminrpc.Empty{})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var downloadOffersCommand = cli.Command{
	Name:      "downloadoffers",
	Category:  "Exchange",
	Usage:     "Request sell-side offers for a squeak from every connected peer.",
	ArgsUsage: "hash_hex",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		hash, err := hex.DecodeString(ctx.Args().First())
		if err != nil {
			return fmt.Errorf("decode hash: %w", err)
		}
		resp, err := client.DownloadOffers(context.Background(), &adminrpc.DownloadOffersRequest{SqueakHash: hash})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var payOfferCommand = cli.Command{
	Name:      "payoffer",
	Category:  "Exchange",
	Usage:     "Pay a received offer and unlock its squeak.",
	ArgsUsage: "received_offer_id price_ceiling_msat",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		id, err := parseUint(ctx.Args().First())
		if err != nil {
			return err
		}
		ceiling, err := parseInt64(ctx.Args().Get(1))
		if err != nil {
			return err
		}
		resp, err := client.PayOffer(context.Background(), &adminrpc.PayOfferRequest{
			ReceivedOfferId:  id,
			PriceCeilingMsat: ceiling,
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}

var getNetworkCommand = cli.Command{
	Name:     "getnetwork",
	Category: "Info",
	Usage:    "Show the configured chain network and peer-listen settings.",
	Action: actionDecorator(func(ctx *cli.Context) error {
		client, cleanUp := getClient(ctx)
		defer cleanUp()

		resp, err := client.GetNetwork(context.Background(), &adminrpc.Empty{})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	}),
}
