// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wkdwlgus/kids-chatbot-service/internal/chatapi"
	"github.com/wkdwlgus/kids-chatbot-service/internal/logging"
	"github.com/wkdwlgus/kids-chatbot-service/internal/mockapi"
	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/storage"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// testEnv isolates the command from the real home directory and captures
// its output. It returns stdout, stderr and the data directory.
func testEnv(t *testing.T) (*bytes.Buffer, *bytes.Buffer, string) {
	t.Helper()
	home := t.TempDir()
	dataDir := filepath.Join(home, "data")
	t.Setenv("HOME", home)
	t.Setenv("KIDSGUIDE_DATA_DIR", dataDir)
	for _, key := range []string{"KIDSGUIDE_API_URL", "KIDSGUIDE_BACKEND", "KIDSGUIDE_KEEP_HISTORY", "KIDSGUIDE_THEME", "KIDSGUIDE_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	t.Setenv("NO_COLOR", "1")

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr, oldIn := stdout, stderr, stdin
	stdout, stderr, stdin = out, errOut, strings.NewReader("")
	t.Cleanup(func() { stdout, stderr, stdin = oldOut, oldErr, oldIn })
	return out, errOut, dataDir
}

// mockBackend serves the development backend with no latency.
func mockBackend(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(mockapi.NewServer(mockapi.Config{Logger: logging.Discard()}).Handler())
	t.Cleanup(srv.Close)
	return srv.URL
}

// failingBackend answers every request with 502.
func failingBackend(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

// scriptedReader replays lines, then reports EOF.
type scriptedReader struct {
	lines   []string
	prompts int
}

func (r *scriptedReader) ReadInput(prompt string) (string, error) {
	r.prompts++
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) Close() {}

// =============================================================================
// ARG PARSER TESTS
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		bools    []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"history"},
			wantSub: "history",
		},
		{
			name:    "flag with value",
			args:    []string{"serve-mock", "--addr", ":9000"},
			wantSub: "serve-mock",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("addr") != ":9000" {
					t.Errorf("Flag(addr) = %q, want %q", p.Flag("addr"), ":9000")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"chat", "--api=http://localhost:8080"},
			wantSub: "chat",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("api") != "http://localhost:8080" {
					t.Errorf("Flag(api) = %q", p.Flag("api"))
				}
			},
		},
		{
			name:    "declared boolean does not consume the command",
			args:    []string{"--keep-history", "chat"},
			bools:   []string{"keep-history"},
			wantSub: "chat",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("keep-history") {
					t.Error("BoolFlag(keep-history) should be true")
				}
			},
		},
		{
			name:    "undeclared flag takes the next word",
			args:    []string{"--keep-history", "chat"},
			wantSub: "",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("keep-history") != "chat" {
					t.Errorf("Flag(keep-history) = %q, want %q", p.Flag("keep-history"), "chat")
				}
			},
		},
		{
			name:    "boolean with explicit value",
			args:    []string{"tui", "--no-alt-screen=false"},
			bools:   []string{"no-alt-screen"},
			wantSub: "tui",
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("no-alt-screen") {
					t.Error("BoolFlag(no-alt-screen) should be false")
				}
				if !p.HasFlag("no-alt-screen") {
					t.Error("HasFlag(no-alt-screen) should be true")
				}
			},
		},
		{
			name:    "multiple positional args",
			args:    []string{"ask", "한남동", "근처", "공원"},
			wantSub: "ask",
			validate: func(t *testing.T, p *ArgParser) {
				if p.PositionalCount() != 4 {
					t.Errorf("PositionalCount() = %d, want 4", p.PositionalCount())
				}
				if got := JoinPositionalArgs(p, 1); got != "한남동 근처 공원" {
					t.Errorf("JoinPositionalArgs = %q", got)
				}
			},
		},
		{
			name:    "double dash ends flags",
			args:    []string{"ask", "--", "--not-a-flag", "text"},
			wantSub: "ask",
			validate: func(t *testing.T, p *ArgParser) {
				if p.HasFlag("not-a-flag") {
					t.Error("arguments after -- must be positional")
				}
				if p.Positional(1) != "--not-a-flag" {
					t.Errorf("Positional(1) = %q", p.Positional(1))
				}
			},
		},
		{
			name:    "single dash is positional",
			args:    []string{"ask", "-"},
			wantSub: "ask",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Positional(1) != "-" {
					t.Errorf("Positional(1) = %q, want -", p.Positional(1))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewArgParser(tt.args, tt.bools...)
			if parser.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", parser.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, parser)
			}
		})
	}
}

func TestArgParser_EmptyArgs(t *testing.T) {
	parser := NewArgParser(nil)
	if parser.Subcommand() != "" {
		t.Errorf("Subcommand() = %q, want empty", parser.Subcommand())
	}
	if parser.Positional(0) != "" || parser.Positional(-1) != "" {
		t.Error("out of range Positional should be empty")
	}
	if len(parser.PositionalFrom(3)) != 0 {
		t.Error("out of range PositionalFrom should be empty")
	}
	if parser.FlagOrDefault("addr", ":8080") != ":8080" {
		t.Error("FlagOrDefault should fall back")
	}
	if _, err := parser.FlagInt("rate"); err == nil {
		t.Error("FlagInt on a missing flag should error")
	}
}

func TestParseBoolString(t *testing.T) {
	trueValues := []string{"true", "TRUE", "yes", "y", "1", "on"}
	falseValues := []string{"false", "FALSE", "no", "n", "0", "off"}

	for _, v := range trueValues {
		got, err := ParseBoolString(v)
		if err != nil || !got {
			t.Errorf("ParseBoolString(%q) = %v, %v; want true", v, got, err)
		}
	}
	for _, v := range falseValues {
		got, err := ParseBoolString(v)
		if err != nil || got {
			t.Errorf("ParseBoolString(%q) = %v, %v; want false", v, got, err)
		}
	}
	if _, err := ParseBoolString("maybe"); err == nil {
		t.Error("ParseBoolString(maybe) should error")
	}
}

func TestParseIntWithValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"valid positive", "42", 42, false},
		{"zero is invalid", "0", 0, true},
		{"negative is invalid", "-5", 0, true},
		{"empty is invalid", "", 0, true},
		{"non-numeric is invalid", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntWithValidation(tt.input, "--rate")
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseIntWithValidation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseIntWithValidation(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// =============================================================================
// COMMAND PARSING TESTS
// =============================================================================

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantCmd  Command
		validate func(*testing.T, Args)
	}{
		{
			name:    "no arguments runs the full-screen client",
			argv:    nil,
			wantCmd: CmdTUI,
		},
		{
			name:    "global flags before ask",
			argv:    []string{"--keep-history", "ask", "한남동", "근처", "공원"},
			wantCmd: CmdAsk,
			validate: func(t *testing.T, a Args) {
				require.True(t, a.KeepHistory)
				require.Equal(t, "한남동 근처 공원", a.Query)
			},
		},
		{
			name:    "flags after the command",
			argv:    []string{"chat", "--api", "http://127.0.0.1:9000", "--backend", "SQLite", "--no-alt-screen"},
			wantCmd: CmdChat,
			validate: func(t *testing.T, a Args) {
				require.Equal(t, "http://127.0.0.1:9000", a.APIURL)
				require.Equal(t, "sqlite", a.Backend)
				require.True(t, a.NoAltScreen)
			},
		},
		{
			name:    "config set",
			argv:    []string{"config", "set", "ui.theme", "dark"},
			wantCmd: CmdConfig,
			validate: func(t *testing.T, a Args) {
				require.Equal(t, "set", a.Subcommand)
				require.Equal(t, "ui.theme", a.ConfigKey)
				require.Equal(t, "dark", a.ConfigVal)
			},
		},
		{
			name:    "history as markdown",
			argv:    []string{"history", "--markdown"},
			wantCmd: CmdHistory,
			validate: func(t *testing.T, a Args) {
				require.True(t, a.Markdown)
			},
		},
		{
			name:    "serve-mock alias",
			argv:    []string{"mock", "--addr", ":9000", "--rate", "30"},
			wantCmd: CmdServeMock,
			validate: func(t *testing.T, a Args) {
				require.Equal(t, ":9000", a.Addr)
				require.Equal(t, "30", a.Rate)
			},
		},
		{
			name:    "help flag wins",
			argv:    []string{"ask", "--help"},
			wantCmd: CmdHelp,
		},
		{
			name:    "version flag",
			argv:    []string{"--version"},
			wantCmd: CmdVersion,
		},
		{
			name:    "unknown command",
			argv:    []string{"hsitory"},
			wantCmd: CmdUnknown,
			validate: func(t *testing.T, a Args) {
				require.Equal(t, "hsitory", a.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := ParseArgs(tt.argv)
			if cmd != tt.wantCmd {
				t.Fatalf("ParseArgs(%v) = %s, want %s", tt.argv, cmd, tt.wantCmd)
			}
			if tt.validate != nil {
				tt.validate(t, args)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	tests := map[string]string{
		"hsitory": "history",
		"hepl":    "help",
		"cht":     "chat",
		"zzzzzz":  "",
		"x":       "",
	}
	for input, want := range tests {
		if got := SuggestCommand(input); got != want {
			t.Errorf("SuggestCommand(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSuggestConfigKey(t *testing.T) {
	tests := map[string]string{
		"ui.thme":        "ui.theme",
		"API.BASE_ULR":   "api.base_url",
		"storage.backnd": "storage.backend",
		"ui.theme":       "",
		"nothing.close":  "",
	}
	for input, want := range tests {
		if got := SuggestConfigKey(input); got != want {
			t.Errorf("SuggestConfigKey(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestEditDistance_CountsRunes(t *testing.T) {
	require.Equal(t, 1, editDistance([]rune("한남동"), []rune("한남")))
	require.Equal(t, 1, editDistance([]rune("보광"), []rune("보과")))
	require.Equal(t, 3, editDistance([]rune("abc"), nil))
	require.Equal(t, 0, editDistance([]rune("chat"), []rune("chat")))
}

func TestRun_UnknownCommand(t *testing.T) {
	testEnv(t)

	cmd, args := ParseArgs([]string{"hsitory"})
	err := Run(cmd, args)

	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	require.Contains(t, err.Error(), `did you mean "history"`)
	require.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestRun_HelpAndVersion(t *testing.T) {
	out, _, _ := testEnv(t)

	require.NoError(t, Run(CmdHelp, Args{}))
	require.Contains(t, out.String(), "serve-mock")

	out.Reset()
	require.NoError(t, Run(CmdVersion, Args{}))
	require.Contains(t, out.String(), "kidsguide version "+Version)
}

// =============================================================================
// ERROR TESTS
// =============================================================================

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", ErrMissingArgument("text", askExample), ExitUsageError},
		{"config", &ConfigError{Err: errors.New("bad")}, ExitConfigError},
		{"backend status", &CommandError{Command: "ask", Err: &chatapi.StatusError{Status: 502}}, ExitNetworkError},
		{"malformed reply", fmt.Errorf("send: %w", chatapi.ErrMalformedReply), ExitNetworkError},
		{"deadline", fmt.Errorf("send: %w", context.DeadlineExceeded), ExitNetworkError},
		{"storage", fmt.Errorf("read: %w", storage.ErrNotFound), ExitStorageError},
		{"path", &os.PathError{Op: "open", Path: "/x", Err: os.ErrPermission}, ExitStorageError},
		{"other", errors.New("boom"), ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDisplayError(t *testing.T) {
	_, errOut, _ := testEnv(t)
	DisplayError(&UsageError{Message: "missing argument: text"})
	require.Contains(t, errOut.String(), "[ERROR] missing argument: text")

	errOut.Reset()
	DisplayError(nil)
	require.Empty(t, errOut.String())
}

// =============================================================================
// CONFIG LOADING TESTS
// =============================================================================

func TestLoadConfig_FlagOverrides(t *testing.T) {
	_, _, dataDir := testEnv(t)

	cfg, err := loadConfig(Args{
		APIURL:      "http://127.0.0.1:9000/",
		Backend:     "sqlite",
		KeepHistory: true,
		NoAltScreen: true,
	})
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:9000", cfg.API.BaseURL)
	require.Equal(t, "sqlite", cfg.Storage.Backend)
	require.True(t, cfg.Storage.KeepHistory)
	require.False(t, cfg.UI.AltScreen)
	require.Equal(t, dataDir, cfg.DataDir())
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	testEnv(t)

	_, err := loadConfig(Args{Backend: "mongo"})
	require.Error(t, err)
	require.Equal(t, ExitConfigError, GetExitCode(err))

	_, err = loadConfig(Args{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")})
	require.Equal(t, ExitConfigError, GetExitCode(err))
}

// =============================================================================
// ASK TESTS
// =============================================================================

func TestHandleAsk_MapReply(t *testing.T) {
	out, _, dataDir := testEnv(t)
	api := mockBackend(t)

	err := HandleAsk(Args{Query: "한남동 근처 공원", APIURL: api})
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "1. 한남어린이공원 - 그늘 많음")
	require.Contains(t, text, model.MapLinkLabel+": https://map.kakao.com/")

	// The thread stays in memory; only the identifier is persisted.
	_, statErr := os.Stat(filepath.Join(dataDir, storage.KeyMessages))
	require.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(dataDir, storage.KeyConversationID))
	require.NoError(t, statErr)
}

func TestHandleAsk_BackendFailurePrintsApology(t *testing.T) {
	out, _, _ := testEnv(t)
	api := failingBackend(t)

	err := HandleAsk(Args{Query: "주말 나들이", APIURL: api})
	require.Error(t, err)
	require.ErrorIs(t, err, chatapi.ErrStatus)
	require.Equal(t, ExitNetworkError, GetExitCode(err))
	require.Contains(t, out.String(), model.ApologyText)
}

func TestAskQuery(t *testing.T) {
	testEnv(t)

	q, err := askQuery("  비 오는 날  ")
	require.NoError(t, err)
	require.Equal(t, "비 오는 날", q)

	stdin = strings.NewReader("한남동 공원\n")
	q, err = askQuery("-")
	require.NoError(t, err)
	require.Equal(t, "한남동 공원", q)

	stdin = strings.NewReader("   ")
	_, err = askQuery("")
	require.Equal(t, ExitUsageError, GetExitCode(err))

	_, err = askQuery(strings.Repeat("가", 2001))
	require.Equal(t, ExitUsageError, GetExitCode(err))
}

// =============================================================================
// HISTORY / RESET / ID TESTS
// =============================================================================

func TestHistoryCommands(t *testing.T) {
	out, _, _ := testEnv(t)

	require.NoError(t, HandleHistory(Args{}))
	require.Contains(t, out.String(), "저장된 대화가 없어요.")

	out.Reset()
	require.NoError(t, HandleReset(Args{}))
	require.Contains(t, out.String(), "초기화")

	out.Reset()
	require.NoError(t, HandleHistory(Args{}))
	require.Contains(t, out.String(), model.WelcomeText)

	out.Reset()
	require.NoError(t, HandleHistory(Args{Markdown: true}))
	require.Contains(t, out.String(), "# 키즈 액티비티 가이드 대화")
	require.Contains(t, out.String(), model.WelcomeText)
}

func TestHandleID_Stable(t *testing.T) {
	out, _, _ := testEnv(t)

	require.NoError(t, HandleID(Args{}))
	first := strings.TrimSpace(out.String())
	require.NotEmpty(t, first)

	out.Reset()
	require.NoError(t, HandleReset(Args{}))
	out.Reset()
	require.NoError(t, HandleID(Args{}))
	require.Equal(t, first, strings.TrimSpace(out.String()))
}

func TestHistoryCommands_SQLiteBackend(t *testing.T) {
	out, _, dataDir := testEnv(t)

	require.NoError(t, HandleReset(Args{Backend: "sqlite"}))
	out.Reset()
	require.NoError(t, HandleHistory(Args{Backend: "sqlite"}))
	require.Contains(t, out.String(), model.WelcomeText)

	_, err := os.Stat(filepath.Join(dataDir, "store.db"))
	require.NoError(t, err)
}

// =============================================================================
// CONFIG COMMAND TESTS
// =============================================================================

func TestHandleConfig_SetGet(t *testing.T) {
	out, _, _ := testEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, HandleConfig(Args{ConfigPath: path, Subcommand: "set", ConfigKey: "ui.theme", ConfigVal: "light"}))
	require.Contains(t, out.String(), "[OK] ui.theme = light")

	out.Reset()
	require.NoError(t, HandleConfig(Args{ConfigPath: path, Subcommand: "get", ConfigKey: "ui.theme"}))
	require.Equal(t, "light\n", out.String())

	out.Reset()
	require.NoError(t, HandleConfig(Args{ConfigPath: path}))
	require.Contains(t, out.String(), "[ui]")
	require.Contains(t, out.String(), "api.base_url")
	require.Contains(t, out.String(), path)
}

func TestHandleConfig_Errors(t *testing.T) {
	testEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	err := HandleConfig(Args{ConfigPath: path, Subcommand: "set", ConfigKey: "ui.theme", ConfigVal: "neon"})
	require.Equal(t, ExitConfigError, GetExitCode(err))
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "invalid values must not be written")

	err = HandleConfig(Args{ConfigPath: path, Subcommand: "set", ConfigKey: "ui.nope", ConfigVal: "1"})
	require.Equal(t, ExitUsageError, GetExitCode(err))

	err = HandleConfig(Args{ConfigPath: path, Subcommand: "get"})
	require.Equal(t, ExitUsageError, GetExitCode(err))

	err = HandleConfig(Args{ConfigPath: path, Subcommand: "get", ConfigKey: "ui.thme"})
	require.Equal(t, ExitUsageError, GetExitCode(err))
	require.Contains(t, err.Error(), `did you mean "ui.theme"?`)

	err = HandleConfig(Args{Subcommand: "frobnicate"})
	require.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestHandleConfig_ResetAndKeys(t *testing.T) {
	out, _, _ := testEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, HandleConfig(Args{ConfigPath: path, Subcommand: "reset"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "base_url")

	out.Reset()
	require.NoError(t, HandleConfig(Args{Subcommand: "keys"}))
	require.Contains(t, out.String(), "storage.keep_history\n")
}

// =============================================================================
// LINE-MODE CHAT TESTS
// =============================================================================

func TestChatSession_ExchangeAndCommands(t *testing.T) {
	out, _, _ := testEnv(t)
	api := mockBackend(t)

	a, err := openApp(Args{APIURL: api})
	require.NoError(t, err)
	defer a.Close()
	a.store.Load()

	session := &chatSession{svc: a.service(a.store), printer: newReplyPrinter(stdout, "auto", a.logger)}
	reader := &scriptedReader{lines: []string{"", "한남동 근처 공원", "/help", "/clear", "/quit", "never read"}}

	require.NoError(t, session.run(reader))
	require.Equal(t, 5, reader.prompts)

	text := out.String()
	require.Contains(t, text, model.AppTitle)
	require.Contains(t, text, model.ExamplePrompts[0])
	require.Contains(t, text, "한남어린이공원")
	require.Contains(t, text, "/clear")

	msgs := a.store.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, model.WelcomeText, msgs[0].Content)
}

func TestChatSession_ShowsExistingThreadAndStopsAtEOF(t *testing.T) {
	out, _, _ := testEnv(t)

	a, err := openApp(Args{APIURL: failingBackend(t)})
	require.NoError(t, err)
	defer a.Close()
	require.NoError(t, a.store.Append(model.NewUserMessage("성수동 자전거")))

	session := &chatSession{svc: a.service(a.store), printer: newReplyPrinter(stdout, "auto", a.logger)}
	require.NoError(t, session.run(&scriptedReader{lines: []string{"다시 알려줘"}}))

	text := out.String()
	require.Contains(t, text, "성수동 자전거")
	require.NotContains(t, text, model.ExamplePrompts[0])
	require.Contains(t, text, model.ApologyText)
	require.Equal(t, 3, a.store.Len())
}

// =============================================================================
// RENDERING TESTS
// =============================================================================

func TestPlainMessage(t *testing.T) {
	msg := model.NewMapMessage("공원이에요\a", "https://map.example/1", &model.MapData{
		Markers: []model.Marker{
			{Name: "한남어린이공원", Description: "그늘 많음"},
			{Name: "보광어린이공원"},
		},
	})

	want := "공원이에요\n1. 한남어린이공원 - 그늘 많음\n2. 보광어린이공원\n" + model.MapLinkLabel + ": https://map.example/1"
	require.Equal(t, want, plainMessage(msg))
	require.Equal(t, "", plainMessage(model.NewAssistantText("  ")))
}
