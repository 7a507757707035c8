package models

import "testing"

func TestParseCommand_Inquire(t *testing.T) {
	cmd := ParseCommand("inquire")
	if cmd.Type != CommandInquire {
		t.Errorf("expected inquire, got %s", cmd.Type)
	}
	if len(cmd.Args) != 0 {
		t.Errorf("expected no args, got %v", cmd.Args)
	}
}

func TestParseCommand_StockAlias(t *testing.T) {
	cmd := ParseCommand("stock")
	if cmd.Type != CommandInquire {
		t.Errorf("expected inquire for 'stock', got %s", cmd.Type)
	}
}

func TestParseCommand_RentWithArgs(t *testing.T) {
	cmd := ParseCommand("  Rent sedan 3 018974 VIP ")
	if cmd.Type != CommandRent {
		t.Fatalf("expected rent, got %s", cmd.Type)
	}
	want := []string{"sedan", "3", "018974", "vip"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("expected %d args, got %v", len(want), cmd.Args)
	}
	for i, arg := range want {
		if cmd.Args[i] != arg {
			t.Errorf("arg %d: expected %q, got %q", i, arg, cmd.Args[i])
		}
	}
}

func TestParseCommand_SlashPrefix(t *testing.T) {
	cmd := ParseCommand("/return abc-123")
	if cmd.Type != CommandReturn {
		t.Errorf("expected return, got %s", cmd.Type)
	}
	if len(cmd.Args) != 1 || cmd.Args[0] != "abc-123" {
		t.Errorf("expected [abc-123], got %v", cmd.Args)
	}
}

func TestParseCommand_ExitAliases(t *testing.T) {
	for _, line := range []string{"exit", "quit", "EXIT"} {
		if cmd := ParseCommand(line); cmd.Type != CommandExit {
			t.Errorf("%q: expected exit, got %s", line, cmd.Type)
		}
	}
}

func TestParseCommand_Unknown(t *testing.T) {
	for _, line := range []string{"", "   ", "dance"} {
		if cmd := ParseCommand(line); cmd.Type != CommandUnknown {
			t.Errorf("%q: expected unknown, got %s", line, cmd.Type)
		}
	}
}
