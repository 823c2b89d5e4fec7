package component

import (
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// Defaults returns the starting config of a widget category. Unknown types
// get an empty medium config.
func Defaults(t widget.Type) Config {
	cfg := Config{Size: widget.Medium}

	switch t {
	case widget.Accordion:
		cfg.Content = Content{
			Title: "What do you like the most?",
			Body:  "I like momo the most and I know you like it too secretly.",
		}
		cfg.Styles = style.Override{
			BorderRadius: style.Px(8),
		}
	case widget.Button:
		cfg.Variant = widget.Contained
		cfg.Content = Content{Label: "Button"}
		cfg.Styles = style.Override{
			BorderRadius: style.Px(12),
			Padding:      style.Pad(24, 8),
		}
	case widget.Card:
		shown := true
		cfg.Content = Content{
			Title:       "Card Title",
			Description: "This is a description of the card component. It demonstrates various styles across different UI libraries.",
			Image:       &shown,
		}
		cfg.Styles = style.Override{
			BorderRadius: style.Px(12),
			BorderWidth:  style.Px(1),
			Padding:      style.Pad(24, 24),
		}
	case widget.IconButton:
		cfg.Variant = widget.Contained
		cfg.Content = Content{Label: "Search", Icon: "search"}
		cfg.Styles = style.Override{
			BorderRadius: style.Px(20),
		}
	case widget.Input:
		cfg.Variant = widget.Outlined
		cfg.Content = Content{
			Label:       "Email Address",
			Placeholder: "user@example.com",
		}
		cfg.Styles = style.Override{
			BorderRadius: style.Px(8),
		}
	case widget.Modal:
		cfg.Content = Content{
			Title: "Modal Title",
			Body:  "This is the modal content description. It can be long or short depending on your needs.",
		}
		cfg.Styles = style.Override{
			BorderRadius: style.Px(12),
		}
	case widget.Progress:
		cfg.Content = Content{
			Label: "Uploading Assets...",
			Value: 60,
			Max:   100,
		}
	case widget.Radio:
		cfg.Content = Content{
			Options:  []Option{{Value: "Option 1", Label: "Option 1"}, {Value: "Option 2", Label: "Option 2"}, {Value: "Option 3", Label: "Option 3"}},
			Selected: "Option 1",
		}
	case widget.Select:
		cfg.Content = Content{
			Label:       "Choose Plan",
			Placeholder: "Select a variant...",
			Options: []Option{
				{Value: "option1", Label: "Basic Plan"},
				{Value: "option2", Label: "Pro Plan"},
				{Value: "option3", Label: "Enterprise"},
			},
			Selected: "option1",
		}
		cfg.Styles = style.Override{
			BorderRadius: style.Px(8),
		}
	case widget.Switch:
		cfg.Content = Content{Label: "Toggle"}
	case widget.Tabs:
		cfg.Content = Content{
			Tabs: []Tab{
				{Label: "Account", Value: "account", Body: "Manage your account settings and preferences here."},
				{Label: "Password", Value: "password", Body: "Update your password and security settings."},
				{Label: "Notifications", Value: "notifications", Body: "Configure how you receive notifications."},
			},
			DefaultValue: "account",
			Orientation:  "horizontal",
		}
	}
	return cfg
}
