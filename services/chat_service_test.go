package services

import (
	"errors"
	"testing"

	"fittrack/models"
)

func TestSendTextPersistsMessage(t *testing.T) {
	svc := NewChatService(testDB(t), nil)
	user := &models.User{DisplayName: "Ana", PhotoURL: "https://example.com/a.jpg"}
	user.ID = 7

	msg, err := svc.SendText(user, "  morning run done  ")
	if err != nil {
		t.Fatalf("SendText: %v", err)
	}
	if msg.Text != "morning run done" {
		t.Errorf("Text = %q, want trimmed", msg.Text)
	}
	if msg.Type != "text" || msg.UserID != 7 || msg.UserName != "Ana" {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func TestSendTextRejectsBlank(t *testing.T) {
	svc := NewChatService(testDB(t), nil)
	user := &models.User{}
	user.ID = 1

	_, err := svc.SendText(user, "   ")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestSendTextAnonymousFallback(t *testing.T) {
	svc := NewChatService(testDB(t), nil)
	user := &models.User{}
	user.ID = 3

	msg, err := svc.SendText(user, "hi")
	if err != nil {
		t.Fatalf("SendText: %v", err)
	}
	if msg.UserName != "Anonymous" {
		t.Errorf("UserName = %q, want Anonymous", msg.UserName)
	}
}

func TestListMessagesAscendingAndCapped(t *testing.T) {
	svc := NewChatService(testDB(t), nil)
	user := &models.User{DisplayName: "Bo"}
	user.ID = 1

	for _, text := range []string{"one", "two", "three"} {
		if _, err := svc.SendText(user, text); err != nil {
			t.Fatal(err)
		}
	}

	msgs, err := svc.ListMessages(2)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	// capped to the newest two, returned oldest-first
	if msgs[0].Text != "two" || msgs[1].Text != "three" {
		t.Errorf("got %q then %q, want two then three", msgs[0].Text, msgs[1].Text)
	}
}
