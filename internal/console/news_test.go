package console

import (
	"bytes"
	"testing"

	"github.com/kettari/news-agency/internal/config"
)

func TestNewsDemoCommand_Run(t *testing.T) {
	var out bytes.Buffer
	cmd := NewNewsDemoCommand(&out)

	if err := cmd.Run(nil); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	want := `
BREAKING NEWS: Earthquake Hits Capital City
Notification → Alice: Earthquake Hits Capital City
Notification → Bob: Earthquake Hits Capital City
CNN.com updated: Earthquake Hits Capital City
BBC News updated: Earthquake Hits Capital City

BREAKING NEWS: Peace Agreement Signed
Notification → Alice: Peace Agreement Signed
CNN.com updated: Peace Agreement Signed
BBC News updated: Peace Agreement Signed

BREAKING NEWS: Stock Market Surges 10%
Notification → Alice: Stock Market Surges 10%
CNN.com updated: Stock Market Surges 10%
BBC News updated: Stock Market Surges 10%
Notification → Charlie: Stock Market Surges 10%
`
	if out.String() != want {
		t.Errorf("Run() output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestNewsPublishCommand_Run(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		conf    *config.Config
		want    string
		wantErr bool
	}{
		{
			name:    "empty headline",
			args:    []string{" "},
			conf:    &config.Config{DryRun: true, BotToken: "token", NotificationChatID: "1,0"},
			wantErr: true,
		},
		{
			name:    "nothing configured",
			args:    []string{"Peace", "Agreement", "Signed"},
			conf:    &config.Config{},
			wantErr: true,
		},
		{
			name: "dry run prints every configured service",
			args: []string{"Peace", "Agreement", "Signed"},
			conf: &config.Config{
				DryRun:             true,
				BotToken:           "token",
				NotificationChatID: "1,0",
				OpenAIApiKey:       "key",
				AnalystName:        "Desk",
				DbConnectionString: "host=localhost",
			},
			want: "\nBREAKING NEWS: Peace Agreement Signed\n" +
				"Telegram updated: Peace Agreement Signed\n" +
				"Notification → Desk: Peace Agreement Signed\n" +
				"Archive updated: Peace Agreement Signed\n",
		},
		{
			name:    "invalid telegram recipients",
			args:    []string{"t"},
			conf:    &config.Config{BotToken: "token", NotificationChatID: "not-a-chat"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := NewNewsPublishCommand(&out)
			cmd.conf = tt.conf

			err := cmd.Run(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && out.String() != tt.want {
				t.Errorf("Run() output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}
