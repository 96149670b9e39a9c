package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gammazero/workerpool"
	"github.com/jessevdk/go-flags"
	"github.com/jonboulle/clockwork"

	"votebot/clients"
	"votebot/clients/rtm"
	slackclient "votebot/clients/slack"
	"votebot/config"
	"votebot/core"
	"votebot/models"
	"votebot/services/polls"
	"votebot/services/users"
	"votebot/usecases/votes"
)

type Options struct {
	Debug   bool   `long:"debug" description:"Enable verbose event logging"`
	Timeout string `long:"timeout" description:"Poll duration override, e.g. 90s or 5m (default from VOTE_TIMEOUT)"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if opts.Debug {
		cfg.Debug = true
	}
	if opts.Timeout != "" {
		timeout, err := config.ParseTimeout(opts.Timeout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --timeout: %v\n", err)
			os.Exit(1)
		}
		cfg.VoteTimeout = timeout
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig) error {
	ctx := context.Background()
	slackClient := slackclient.NewSlackClient(cfg.SlackToken)

	log.Printf("📋 Starting to authenticate with Slack")
	auth, err := slackClient.AuthTest()
	if err != nil {
		return fmt.Errorf("failed to authenticate with Slack: %w", err)
	}
	log.Printf("✅ Authenticated as bot user %s", auth.UserID)

	channelID, err := resolveChannelID(ctx, slackClient, cfg.SlackChannel)
	if err != nil {
		return err
	}
	log.Printf("✅ Posting polls to #%s (%s)", cfg.SlackChannel, channelID)

	roster, err := slackClient.ListUsersContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch user roster: %w", err)
	}
	log.Printf("✅ Loaded roster of %d users", len(roster))

	pollsService := polls.NewPollsService()
	usersService := users.NewUsersService(auth.UserID, roster)
	shutdown := core.NewSignal()
	useCase := votes.NewVotesUseCase(
		slackClient,
		pollsService,
		usersService,
		clockwork.NewRealClock(),
		shutdown,
		auth.UserID,
		channelID,
		cfg.VoteTimeout,
	)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		log.Printf("🔌 Interrupt received, shutting down")
		shutdown.Resolve()
	}()

	log.Printf("📋 Starting to connect to Slack RTM")
	conn, err := slackClient.ConnectRTMContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to Slack RTM: %w", err)
	}

	// One worker keeps message events strictly in arrival order.
	wp := workerpool.New(1)
	listener := rtm.NewListener(func(event models.MessageEvent) {
		wp.Submit(func() {
			if cfg.Debug {
				log.Printf("📨 Event: type=%s subtype=%s channel=%s user=%s", event.Type, event.SubType, event.Channel, event.User)
			}
			if err := useCase.ProcessMessageEvent(ctx, event); err != nil {
				log.Printf("❌ Failed to process message event: %v", err)
			}
		})
	}, shutdown)

	listenErr := listener.Listen(ctx, conn.URL)

	// The read loop is done, either from an interrupt or a dropped
	// connection. Drain queued events, then let open polls finish closing.
	shutdown.Resolve()
	wp.StopWait()
	useCase.Wait()

	if listenErr != nil {
		return fmt.Errorf("event stream failed: %w", listenErr)
	}
	log.Printf("🏁 Shutdown complete")
	return nil
}

func resolveChannelID(ctx context.Context, slackClient clients.SlackClient, channelName string) (string, error) {
	channels, err := slackClient.ListChannelsContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list channels: %w", err)
	}
	for _, channel := range channels {
		if channel.Name == channelName {
			return channel.ID, nil
		}
	}
	return "", fmt.Errorf("channel %q not found or bot is not a member", channelName)
}
