package store

import (
	"path/filepath"
	"testing"

	"github.com/joaovbs/wab/internal/domain"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := testDB(t)

	result, err := db.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if result.Changed {
		t.Error("second Migrate() should report Changed=false")
	}
	if result.Version != 2 {
		t.Errorf("version = %d, want 2 (init + fts)", result.Version)
	}
}

func TestChatUpsertAndList(t *testing.T) {
	db := testDB(t)

	chat := &domain.Chat{JID: "123@s.whatsapp.net", Name: "Alice", Type: domain.ChatPrivate, LastMessageAt: 1000}
	if err := db.UpsertChat(chat); err != nil {
		t.Fatal(err)
	}
	chat.Name = "Alice Updated"
	if err := db.UpsertChat(chat); err != nil {
		t.Fatal(err)
	}

	chats, err := db.ListChats(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(chats) != 1 {
		t.Fatalf("got %d chats, want 1", len(chats))
	}
	if chats[0].Name != "Alice Updated" {
		t.Errorf("name = %q, want Alice Updated", chats[0].Name)
	}
}

func TestListChatsOrderedByActivity(t *testing.T) {
	db := testDB(t)

	for _, c := range []domain.Chat{
		{JID: "old@s", LastMessageAt: 1000},
		{JID: "new@s", LastMessageAt: 3000},
		{JID: "mid@s", LastMessageAt: 2000},
	} {
		if err := db.UpsertChat(&c); err != nil {
			t.Fatal(err)
		}
	}

	chats, err := db.ListChats(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"new@s", "mid@s", "old@s"}
	for i, jid := range want {
		if chats[i].JID != jid {
			t.Errorf("chats[%d] = %q, want %q", i, chats[i].JID, jid)
		}
	}
}

func TestEnsureChatDoesNotClobber(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertChat(&domain.Chat{JID: "a@s", Name: "Real Name", UnreadCount: 3, Archived: true}); err != nil {
		t.Fatal(err)
	}
	if err := db.EnsureChat("a@s", domain.ChatPrivate, ""); err != nil {
		t.Fatal(err)
	}

	c, err := db.GetChat("a@s")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Real Name" || c.UnreadCount != 3 || !c.Archived {
		t.Errorf("EnsureChat clobbered existing metadata: %+v", c)
	}
}

func TestGetChatMissing(t *testing.T) {
	db := testDB(t)
	c, err := db.GetChat("missing@s")
	if err != nil {
		t.Fatal(err)
	}
	if c != nil {
		t.Errorf("expected nil for missing chat, got %+v", c)
	}
}

func TestCreateOrIgnoreMessageIdempotent(t *testing.T) {
	db := testDB(t)

	if err := db.EnsureChat("chat@s", domain.ChatPrivate, ""); err != nil {
		t.Fatal(err)
	}

	msg := &domain.Message{ChatJID: "chat@s", MsgID: "A", Type: domain.MessageText, Text: "hello", Timestamp: 1000}
	inserted, err := db.CreateOrIgnoreMessage(msg)
	if err != nil {
		t.Fatal(err)
	}
	if !inserted {
		t.Fatal("first insert should report inserted=true")
	}

	dup := &domain.Message{ChatJID: "chat@s", MsgID: "A", Type: domain.MessageText, Text: "hello again", Timestamp: 2000}
	inserted, err = db.CreateOrIgnoreMessage(dup)
	if err != nil {
		t.Fatal(err)
	}
	if inserted {
		t.Error("replay should report inserted=false")
	}

	msgs, err := db.ListMessages("chat@s", 100, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Text != "hello" {
		t.Errorf("replay overwrote original body: %q", msgs[0].Text)
	}
}

func TestCreateMessageDuplicateFails(t *testing.T) {
	db := testDB(t)

	msg := &domain.Message{ChatJID: "c@s", MsgID: "m1", Type: domain.MessageText, Timestamp: 1}
	if err := db.CreateMessage(msg); err != nil {
		t.Fatal(err)
	}
	if err := db.CreateMessage(msg); err == nil {
		t.Error("duplicate CreateMessage should fail")
	}
}

func TestReadStatusAndUnreadCount(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertChat(&domain.Chat{JID: "c@s"}); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"m1", "m2"} {
		if _, err := db.CreateOrIgnoreMessage(&domain.Message{ChatJID: "c@s", MsgID: id, Type: domain.MessageText, Timestamp: 1}); err != nil {
			t.Fatal(err)
		}
		if err := db.IncrementUnreadCount("c@s"); err != nil {
			t.Fatal(err)
		}
	}

	c, _ := db.GetChat("c@s")
	if c.UnreadCount != 2 {
		t.Fatalf("unread = %d, want 2", c.UnreadCount)
	}

	if err := db.UpdateReadStatus("c@s", []string{"m1", "m2"}, true); err != nil {
		t.Fatal(err)
	}
	if err := db.SetUnreadCount("c@s", 0); err != nil {
		t.Fatal(err)
	}

	c, _ = db.GetChat("c@s")
	if c.UnreadCount != 0 {
		t.Errorf("unread = %d, want 0", c.UnreadCount)
	}
	msgs, _ := db.ListMessages("c@s", 10, "")
	for _, m := range msgs {
		if !m.Read {
			t.Errorf("message %s not marked read", m.MsgID)
		}
	}
}

func TestSetUnreadCountClampsNegative(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertChat(&domain.Chat{JID: "c@s"}); err != nil {
		t.Fatal(err)
	}
	if err := db.SetUnreadCount("c@s", -5); err != nil {
		t.Fatal(err)
	}
	c, _ := db.GetChat("c@s")
	if c.UnreadCount != 0 {
		t.Errorf("unread = %d, want 0 (clamped)", c.UnreadCount)
	}
}

func TestArchivedAndMutedFlags(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertChat(&domain.Chat{JID: "c@s"}); err != nil {
		t.Fatal(err)
	}
	if err := db.SetArchived("c@s", true); err != nil {
		t.Fatal(err)
	}
	if err := db.SetMuted("c@s", true); err != nil {
		t.Fatal(err)
	}
	c, _ := db.GetChat("c@s")
	if !c.Archived || !c.Muted {
		t.Errorf("flags not set: %+v", c)
	}
}

func TestListMessagesKeysetPagination(t *testing.T) {
	db := testDB(t)

	for i, id := range []string{"m1", "m2", "m3"} {
		if _, err := db.CreateOrIgnoreMessage(&domain.Message{
			ChatJID: "c@s", MsgID: id, Type: domain.MessageText, Timestamp: int64(1000 * (i + 1)),
		}); err != nil {
			t.Fatal(err)
		}
	}

	msgs, err := db.ListMessages("c@s", 10, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 3 || msgs[0].MsgID != "m3" {
		t.Fatalf("unexpected page: %+v", msgs)
	}

	older, err := db.ListMessages("c@s", 10, "m3")
	if err != nil {
		t.Fatal(err)
	}
	if len(older) != 2 || older[0].MsgID != "m2" || older[1].MsgID != "m1" {
		t.Errorf("unexpected older page: %+v", older)
	}
}

func TestMessageLocationAndReactionRoundTrip(t *testing.T) {
	db := testDB(t)

	loc := &domain.Message{
		ChatJID: "c@s", MsgID: "loc1", Type: domain.MessageLocation, Timestamp: 1,
		Location: &domain.Location{Latitude: -23.55, Longitude: -46.63, Name: "Office"},
	}
	if err := db.CreateMessage(loc); err != nil {
		t.Fatal(err)
	}
	react := &domain.Message{
		ChatJID: "c@s", MsgID: "r1", SenderJID: "u@s", Type: domain.MessageReaction, Timestamp: 2,
		Reaction: &domain.Reaction{TargetMsgID: "loc1", Emoji: "👍", SenderJID: "u@s", Timestamp: 2},
	}
	if err := db.CreateMessage(react); err != nil {
		t.Fatal(err)
	}

	msgs, err := db.ListMessages("c@s", 10, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Reaction == nil || msgs[0].Reaction.TargetMsgID != "loc1" || msgs[0].Reaction.Emoji != "👍" {
		t.Errorf("reaction not round-tripped: %+v", msgs[0].Reaction)
	}
	if msgs[1].Location == nil || msgs[1].Location.Name != "Office" {
		t.Errorf("location not round-tripped: %+v", msgs[1].Location)
	}
}

func TestContactUpsertKeepsKnownFields(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertContact(&domain.Contact{JID: "u@s", Name: "Known", PushName: "push"}); err != nil {
		t.Fatal(err)
	}
	// Empty incoming fields must not erase known values.
	if err := db.UpsertContact(&domain.Contact{JID: "u@s", PushName: "newer"}); err != nil {
		t.Fatal(err)
	}

	c, err := db.GetContact("u@s")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Known" || c.PushName != "newer" {
		t.Errorf("contact merge wrong: %+v", c)
	}
}

func TestChatDisplayNameFallsBackToContact(t *testing.T) {
	db := testDB(t)

	if err := db.UpsertChat(&domain.Chat{JID: "u@s"}); err != nil {
		t.Fatal(err)
	}
	if err := db.UpsertContact(&domain.Contact{JID: "u@s", PushName: "Pushed"}); err != nil {
		t.Fatal(err)
	}

	c, _ := db.GetChat("u@s")
	if c.Name != "Pushed" {
		t.Errorf("display name = %q, want Pushed", c.Name)
	}
}

func TestSearchMessages(t *testing.T) {
	db := testDB(t)

	if _, err := db.CreateOrIgnoreMessage(&domain.Message{ChatJID: "c@s", MsgID: "m1", Type: domain.MessageText, Text: "hello world", Timestamp: 1000}); err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreateOrIgnoreMessage(&domain.Message{ChatJID: "c@s", MsgID: "m2", Type: domain.MessageText, Text: "goodbye world", Timestamp: 2000}); err != nil {
		t.Fatal(err)
	}

	results, err := db.SearchMessages("hello", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Message.MsgID != "m1" {
		t.Errorf("unexpected search results: %+v", results)
	}
}

func TestSyncState(t *testing.T) {
	db := testDB(t)

	v, err := db.GetSyncState("bootstrap_completed_at")
	if err != nil {
		t.Fatal(err)
	}
	if v != "" {
		t.Errorf("missing key = %q, want empty", v)
	}

	if err := db.SetSyncState("bootstrap_completed_at", "123"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetSyncState("bootstrap_completed_at", "456"); err != nil {
		t.Fatal(err)
	}
	v, _ = db.GetSyncState("bootstrap_completed_at")
	if v != "456" {
		t.Errorf("value = %q, want 456", v)
	}
}
