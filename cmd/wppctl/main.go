package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	wppsearchv1 "github.com/matheus3301/wppsearch/gen/wppsearch/v1"
	"github.com/matheus3301/wppsearch/internal/api"
	"github.com/matheus3301/wppsearch/internal/session"
	"github.com/matheus3301/wppsearch/internal/tui/client"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var (
	sessionFlag string
	jsonFlag    bool
	timeoutFlag time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wppctl",
		Short:         "Control a running wppd session",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&sessionFlag, "session", "", "session name (overrides config default)")
	root.PersistentFlags().BoolVar(&jsonFlag, "json", false, "output in JSON format")
	root.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 10*time.Second, "how long to wait for the daemon")

	conversations := &cobra.Command{
		Use:   "conversations",
		Short: "List or archive conversations",
	}
	conversations.AddCommand(newConversationsListCmd(), newConversationsArchiveCmd())

	root.AddCommand(newStatusCmd(), newSearchCmd(), newCancelCmd(), conversations, newSessionsCmd())
	return root
}

// dial connects to the session daemon and returns a context bounded by --timeout.
func dial(cmd *cobra.Command) (*client.Client, context.Context, context.CancelFunc, error) {
	sessionName, err := session.Resolve(sessionFlag)
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := client.New(session.SocketPath(sessionName))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot connect to daemon for session %q: %w", sessionName, err)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	return c, ctx, cancel, nil
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := dial(cmd)
			if err != nil {
				return err
			}
			defer cancel()
			defer func() { _ = c.Close() }()

			resp, err := c.GetStatus(ctx)
			if err != nil {
				return err
			}
			if jsonFlag {
				return outputJSON(resp)
			}
			fmt.Printf("Session:       %s\n", resp.Session)
			fmt.Printf("Connection:    %s\n", resp.Connection)
			if resp.LoggedIn {
				fmt.Printf("Account:       %s\n", resp.AccountJid)
			} else {
				fmt.Println("Account:       not paired (scan the QR code printed by wppd)")
			}
			fmt.Printf("Uptime:        %s\n", time.Duration(resp.UptimeMs)*time.Millisecond)
			fmt.Printf("Conversations: %d live / %d stored\n", resp.LiveConversations, resp.StoredConversations)
			fmt.Printf("Messages:      %d\n", resp.Messages)
			fmt.Printf("Searching:     %v\n", resp.SearchBusy)
			if resp.LastOptimizeUnixMs != 0 {
				fmt.Printf("Last optimize: %s\n", time.UnixMilli(resp.LastOptimizeUnixMs).Format(time.DateTime))
			}
			if resp.EventsDropped != 0 {
				fmt.Printf("Dropped:       %d events\n", resp.EventsDropped)
			}
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <terms...>",
		Short: "Search messages, newest first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := dial(cmd)
			if err != nil {
				return err
			}
			defer cancel()
			defer func() { _ = c.Close() }()

			// Subscribe first so the results cannot be missed.
			stream, err := c.WatchResults(ctx)
			if err != nil {
				return err
			}
			if _, err := stream.Recv(); err != nil {
				return fmt.Errorf("subscribe: %w", err)
			}

			resp, err := c.Search(ctx, &wppsearchv1.SearchRequest{Query: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			evt, err := stream.WaitResults(resp.RequestId)
			if err != nil {
				return fmt.Errorf("search %s: %w", resp.RequestId, err)
			}
			if jsonFlag {
				return outputJSON(evt)
			}
			printResults(evt.Results)
			return nil
		},
	}
}

func printResults(results []*wppsearchv1.Message) {
	if len(results) == 0 {
		fmt.Println("No messages found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SENT\tCONVERSATION\tFROM\tSTATUS\tMESSAGE")
	for _, m := range results {
		conv := m.ConversationName
		if conv == "" {
			conv = m.Contact
		}
		if m.ConversationKind == api.ConversationStub {
			conv += " (archived)"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			time.UnixMilli(m.TimeSentUnixMs).Format("2006-01-02 15:04"),
			conv, m.Counterpart, m.Status, oneLine(m.Body, 80))
	}
	_ = w.Flush()
}

func newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Cancel the running search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := dial(cmd)
			if err != nil {
				return err
			}
			defer cancel()
			defer func() { _ = c.Close() }()

			resp, err := c.CancelSearches(ctx)
			if err != nil {
				return err
			}
			if jsonFlag {
				return outputJSON(resp)
			}
			if resp.WasBusy {
				fmt.Println("Search cancelled.")
			} else {
				fmt.Println("No search was running.")
			}
			return nil
		},
	}
}

func newConversationsListCmd() *cobra.Command {
	var archived bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open conversations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := dial(cmd)
			if err != nil {
				return err
			}
			defer cancel()
			defer func() { _ = c.Close() }()

			resp, err := c.ListConversations(ctx, archived)
			if err != nil {
				return err
			}
			if jsonFlag {
				return outputJSON(resp)
			}
			if len(resp.Conversations) == 0 {
				fmt.Println("No conversations found.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "UUID\tCONTACT\tNAME\tMODE\tUPDATED")
			for _, conv := range resp.Conversations {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", conv.Uuid, conv.Contact, conv.Name, conv.Mode,
					time.UnixMilli(conv.UpdatedAtUnixMs).Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&archived, "archived", false, "list archived conversations instead")
	return cmd
}

func newConversationsArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <uuid>",
		Short: "Archive a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := dial(cmd)
			if err != nil {
				return err
			}
			defer cancel()
			defer func() { _ = c.Close() }()

			resp, err := c.ArchiveConversation(ctx, args[0])
			if err != nil {
				return err
			}
			if jsonFlag {
				return outputJSON(resp)
			}
			fmt.Printf("Conversation %s archived.\n", args[0])
			return nil
		},
	}
}

func newSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List sessions on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := session.List()
			if err != nil {
				return err
			}
			if jsonFlag {
				return outputJSON(sessions)
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tDATA\tDAEMON")
			for _, s := range sessions {
				daemon := "stopped"
				if s.Running {
					daemon = "running"
				}
				_, _ = fmt.Fprintf(w, "%s\t%v\t%s\n", s.Name, s.HasData, daemon)
			}
			return w.Flush()
		},
	}
}

func oneLine(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > limit {
		return string(r[:limit-1]) + "…"
	}
	return s
}

func outputJSON(v any) error {
	if m, ok := v.(proto.Message); ok {
		out, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}.Marshal(m)
		if err != nil {
			return err
		}
		_, err = fmt.Println(string(out))
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
