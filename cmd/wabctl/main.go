package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/joaovbs/wab/internal/client"
	"github.com/joaovbs/wab/internal/session"
	wabv1 "github.com/joaovbs/wab/pb/wabv1"
)

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Parse()

	sessionName := session.Resolve(*sessionFlag)
	if err := session.ValidateName(sessionName); err != nil {
		fatalf("error: %v", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	c, err := client.New(session.SocketPath(sessionName))
	if err != nil {
		fatalf("error: cannot connect to daemon for session %q: %v", sessionName, err)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "status":
		cmdStatus(ctx, c, *jsonFlag)
	case "connect":
		cmdConnect(ctx, c)
	case "disconnect":
		cmdDisconnect(ctx, c)
	case "logout":
		cmdLogout(ctx, c)
	case "pair":
		// Pairing outlives the default RPC timeout; QR codes rotate for minutes.
		cmdPair(context.Background(), c)
	case "pair-code":
		if len(args) < 2 {
			fatalf("usage: wabctl pair-code <phone-number>")
		}
		cmdPairCode(ctx, c, args[1])
	case "chats":
		cmdChats(ctx, c, *jsonFlag)
	case "messages":
		if len(args) < 2 {
			fatalf("usage: wabctl messages <chat-jid>")
		}
		cmdMessages(ctx, c, args[1], *jsonFlag)
	case "send":
		if len(args) < 3 {
			fatalf("usage: wabctl send <chat-jid> <text>")
		}
		cmdSend(ctx, c, args[1], args[2])
	case "send-file":
		if len(args) < 3 {
			fatalf("usage: wabctl send-file <chat-jid> <path> [caption]")
		}
		caption := ""
		if len(args) > 3 {
			caption = args[3]
		}
		cmdSendFile(ctx, c, args[1], args[2], caption)
	case "react":
		if len(args) < 4 {
			fatalf("usage: wabctl react <chat-jid> <msg-id> <emoji>")
		}
		cmdReact(ctx, c, args[1], args[2], args[3])
	case "read":
		if len(args) < 3 {
			fatalf("usage: wabctl read <chat-jid> <msg-id>...")
		}
		cmdRead(ctx, c, args[1], args[2:])
	case "search":
		if len(args) < 2 {
			fatalf("usage: wabctl search <query> [chat-jid]")
		}
		chatJID := ""
		if len(args) > 2 {
			chatJID = args[2]
		}
		cmdSearch(ctx, c, args[1], chatJID, *jsonFlag)
	case "watch":
		cmdWatch(context.Background(), c, args[1:], *jsonFlag)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: wabctl [--session <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status                              Show connection status")
	fmt.Fprintln(os.Stderr, "  connect                             Connect to WhatsApp")
	fmt.Fprintln(os.Stderr, "  disconnect                          Disconnect from WhatsApp")
	fmt.Fprintln(os.Stderr, "  logout                              Log out and clear credentials")
	fmt.Fprintln(os.Stderr, "  pair                                Pair via QR code")
	fmt.Fprintln(os.Stderr, "  pair-code <phone>                   Pair via 8-character code")
	fmt.Fprintln(os.Stderr, "  chats                               List chats")
	fmt.Fprintln(os.Stderr, "  messages <chat-jid>                 List messages in a chat")
	fmt.Fprintln(os.Stderr, "  send <chat-jid> <text>              Send a text message")
	fmt.Fprintln(os.Stderr, "  send-file <chat-jid> <path> [capt]  Send a file")
	fmt.Fprintln(os.Stderr, "  react <chat-jid> <msg-id> <emoji>   React to a message")
	fmt.Fprintln(os.Stderr, "  read <chat-jid> <msg-id>...         Mark messages as read")
	fmt.Fprintln(os.Stderr, "  search <query> [chat-jid]           Full-text search messages")
	fmt.Fprintln(os.Stderr, "  watch [kind]...                     Stream live events")
}

func cmdStatus(ctx context.Context, c *client.Client, jsonOut bool) {
	resp, err := c.Session.GetConnectionStatus(ctx, &wabv1.GetConnectionStatusRequest{})
	if err != nil {
		fatalf("error: %v", err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	fmt.Printf("State:      %s\n", resp.GetState())
	fmt.Printf("Connected:  %v\n", resp.GetConnected())
	fmt.Printf("Logged in:  %v\n", resp.GetLoggedIn())
	if resp.GetOwnJid() != "" {
		fmt.Printf("JID:        %s\n", resp.GetOwnJid())
		fmt.Printf("Phone:      %s\n", resp.GetPhoneNumber())
	}
}

func cmdConnect(ctx context.Context, c *client.Client) {
	resp, err := c.Session.Connect(ctx, &wabv1.ConnectRequest{})
	if err != nil {
		fatalf("error: %v", err)
	}
	if !resp.GetSuccess() {
		fatalf("connect failed: %s", resp.GetErrorMessage())
	}
	fmt.Println("Connecting.")
}

func cmdDisconnect(ctx context.Context, c *client.Client) {
	if _, err := c.Session.Disconnect(ctx, &wabv1.DisconnectRequest{}); err != nil {
		fatalf("error: %v", err)
	}
	fmt.Println("Disconnected.")
}

func cmdLogout(ctx context.Context, c *client.Client) {
	resp, err := c.Session.Logout(ctx, &wabv1.LogoutRequest{})
	if err != nil {
		fatalf("error: %v", err)
	}
	if !resp.GetSuccess() {
		fatalf("logout failed: %s", resp.GetErrorMessage())
	}
	fmt.Println("Logged out. Local history is still available.")
}

func cmdPair(ctx context.Context, c *client.Client) {
	stream, err := c.Session.GetPairingQR(ctx, &wabv1.GetPairingQRRequest{})
	if err != nil {
		fatalf("error: %v", err)
	}
	for {
		evt, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			fatalf("pairing stream error: %v", err)
		}
		switch evt.GetEventType() {
		case "qr_code":
			q, err := qrcode.New(evt.GetQrCode(), qrcode.Medium)
			if err != nil {
				fatalf("render QR: %v", err)
			}
			fmt.Println("Scan this QR code with WhatsApp on your phone:")
			fmt.Print(q.ToSmallString(false))
		case "success":
			fmt.Println("Paired successfully.")
			return
		case "timeout":
			fatalf("pairing timed out, run pair again")
		case "error":
			fatalf("pairing failed: %s", evt.GetMessage())
		}
	}
}

func cmdPairCode(ctx context.Context, c *client.Client, phone string) {
	resp, err := c.Session.PairWithCode(ctx, &wabv1.PairWithCodeRequest{PhoneNumber: phone})
	if err != nil {
		fatalf("error: %v", err)
	}
	if !resp.GetSuccess() {
		fatalf("pairing failed: %s", resp.GetErrorMessage())
	}
	fmt.Printf("Enter this code on your phone: %s\n", resp.GetPairingCode())
}

func cmdChats(ctx context.Context, c *client.Client, jsonOut bool) {
	resp, err := c.Chat.ListChats(ctx, &wabv1.ListChatsRequest{})
	if err != nil {
		fatalf("error: %v", err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	if len(resp.GetChats()) == 0 {
		fmt.Println("No chats.")
		return
	}
	for _, chat := range resp.GetChats() {
		name := chat.GetName()
		if name == "" {
			name = chat.GetJid()
		}
		marker := " "
		if chat.GetUnreadCount() > 0 {
			marker = fmt.Sprintf("%d", chat.GetUnreadCount())
		}
		fmt.Printf("%3s  %-30s %s: %s\n", marker, name, chat.GetLastMessageSender(), chat.GetLastMessageText())
	}
	fmt.Printf("(%d chats)\n", resp.GetTotalCount())
}

func cmdMessages(ctx context.Context, c *client.Client, chatJID string, jsonOut bool) {
	resp, err := c.Message.ListMessages(ctx, &wabv1.ListMessagesRequest{ChatJid: chatJID})
	if err != nil {
		fatalf("error: %v", err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	for _, m := range resp.GetMessages() {
		printMessage(m)
	}
}

func printMessage(m *wabv1.Message) {
	ts := time.UnixMilli(m.GetTimestampMs()).Format("2006-01-02 15:04")
	sender := m.GetSenderJid()
	if m.GetFromMe() {
		sender = "me"
	}
	body := m.GetText()
	if body == "" && m.GetCaption() != "" {
		body = m.GetCaption()
	}
	if m.GetMessageType() != "text" {
		body = fmt.Sprintf("[%s] %s", m.GetMessageType(), body)
	}
	fmt.Printf("%s  %-24s %s\n", ts, sender, body)
}

func cmdSend(ctx context.Context, c *client.Client, chatJID, text string) {
	resp, err := c.Message.SendMessage(ctx, &wabv1.SendMessageRequest{ChatJid: chatJID, Text: text})
	if err != nil {
		fatalf("error: %v", err)
	}
	if !resp.GetSuccess() {
		fatalf("send failed: %s", resp.GetErrorMessage())
	}
	fmt.Printf("Sent %s\n", resp.GetMessage().GetMsgId())
}

func cmdSendFile(ctx context.Context, c *client.Client, chatJID, path, caption string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("error: %v", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	resp, err := c.Message.SendMessage(ctx, &wabv1.SendMessageRequest{
		ChatJid:  chatJID,
		Media:    data,
		MimeType: mimeType,
		FileName: filepath.Base(path),
		Caption:  caption,
	})
	if err != nil {
		fatalf("error: %v", err)
	}
	if !resp.GetSuccess() {
		fatalf("send failed: %s", resp.GetErrorMessage())
	}
	fmt.Printf("Sent %s (%s)\n", resp.GetMessage().GetMsgId(), mimeType)
}

func cmdReact(ctx context.Context, c *client.Client, chatJID, msgID, emoji string) {
	resp, err := c.Message.SendReaction(ctx, &wabv1.SendReactionRequest{
		ChatJid: chatJID, TargetMsgId: msgID, Emoji: emoji,
	})
	if err != nil {
		fatalf("error: %v", err)
	}
	if !resp.GetSuccess() {
		fatalf("react failed: %s", resp.GetErrorMessage())
	}
	fmt.Println("Reaction sent.")
}

func cmdRead(ctx context.Context, c *client.Client, chatJID string, msgIDs []string) {
	resp, err := c.Message.MarkAsRead(ctx, &wabv1.MarkAsReadRequest{
		ChatJid: chatJID, MessageIds: msgIDs,
	})
	if err != nil {
		fatalf("error: %v", err)
	}
	if !resp.GetSuccess() {
		fatalf("mark read failed: %s", resp.GetErrorMessage())
	}
	fmt.Printf("Marked %d message(s) read.\n", len(msgIDs))
}

func cmdSearch(ctx context.Context, c *client.Client, query, chatJID string, jsonOut bool) {
	resp, err := c.Message.SearchMessages(ctx, &wabv1.SearchMessagesRequest{Query: query, ChatJid: chatJID})
	if err != nil {
		fatalf("error: %v", err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	if len(resp.GetResults()) == 0 {
		fmt.Println("No matches.")
		return
	}
	for _, r := range resp.GetResults() {
		m := r.GetMessage()
		ts := time.UnixMilli(m.GetTimestampMs()).Format("2006-01-02 15:04")
		fmt.Printf("%s  %s  %s\n", ts, m.GetChatJid(), r.GetSnippet())
	}
}

func cmdWatch(ctx context.Context, c *client.Client, kinds []string, jsonOut bool) {
	stream, err := c.Event.StreamEvents(ctx, &wabv1.StreamEventsRequest{Kinds: kinds})
	if err != nil {
		fatalf("error: %v", err)
	}
	for {
		env, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			fatalf("event stream error: %v", err)
		}
		if jsonOut {
			outputJSON(env)
			continue
		}
		ts := time.UnixMilli(env.GetOccurredAtMs()).Format("15:04:05")
		switch env.GetKind() {
		case "message_received", "message_sent":
			m := env.GetMessage()
			fmt.Printf("%s  %s  %s: %s\n", ts, env.GetKind(), m.GetChatJid(), m.GetText())
		case "message_read":
			fmt.Printf("%s  %s  %s (%d messages)\n", ts, env.GetKind(), env.GetReadChatJid(), len(env.GetReadMessageIds()))
		case "chat_updated":
			fmt.Printf("%s  %s  %s\n", ts, env.GetKind(), env.GetChat().GetJid())
		case "connection_status":
			conn := env.GetConnection()
			fmt.Printf("%s  %s  connected=%v logged_in=%v %s\n", ts, env.GetKind(), conn.GetConnected(), conn.GetLoggedIn(), conn.GetReason())
		default:
			fmt.Printf("%s  %s\n", ts, env.GetKind())
		}
	}
}

func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
