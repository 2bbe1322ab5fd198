// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func sessionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "email",
			Aliases: []string{"e"},
			Usage:   "Account email, used to log in when no session exists",
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "Account password, used together with --email",
		},
	}
}

// setupCommand handles local configuration and database initialization
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the local database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Write a config.toml template to disk",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Where to write the configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// authCommand handles account operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Account authentication operations",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in and verify the session",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "signup",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Full name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "phone",
						Usage:    "Phone number",
						Required: true,
					},
				},
				Action: r.AuthSignup,
			},
			{
				Name:   "status",
				Usage:  "Show whether the backend recognizes a live session",
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "End the current session",
				Action: r.AuthLogout,
			},
		},
	}
}

// galleryCommand handles collection operations
func galleryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "gallery",
		Aliases: []string{"g"},
		Usage:   "Image collection operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the collection in display order",
				Flags: append(sessionFlags(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				),
				Action: r.GalleryList,
			},
			{
				Name:  "reorder",
				Usage: "Move an image to a new position (1-based)",
				Flags: append(sessionFlags(),
					&cli.IntFlag{
						Name:     "from",
						Usage:    "Current position of the image",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "to",
						Usage:    "Target position",
						Required: true,
					},
				),
				Action: r.GalleryReorder,
			},
			{
				Name:  "retitle",
				Usage: "Rename an image",
				Flags: append(sessionFlags(),
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Image ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Usage:    "New title",
						Required: true,
					},
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				),
				Action: r.GalleryRetitle,
			},
			{
				Name:    "rm",
				Aliases: []string{"delete"},
				Usage:   "Remove an image from the collection",
				Flags: append(sessionFlags(),
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Image ID",
						Required: true,
					},
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				),
				Action: r.GalleryDelete,
			},
			{
				Name:  "export",
				Usage: "Export the collection listing to a file",
				Flags: append(sessionFlags(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: csv, markdown or text",
						Value:   "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (default: stdout)",
					},
				),
				Action: r.GalleryExport,
			},
		},
	}
}

// uploadCommand stages files and submits them as one batch
func uploadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Aliases:   []string{"up"},
		Usage:     "Upload one or more images as a single batch",
		ArgsUsage: "<path> [<path>...]",
		Flags: append(sessionFlags(),
			&cli.StringSliceFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "Title for the file at the same position (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Stage and list the batch without submitting",
			},
		),
		Action: r.Upload,
	}
}

// themeCommand manages the persisted display theme
func themeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "theme",
		Usage: "Manage the display theme",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the active theme",
				Action: r.ThemeShow,
			},
			{
				Name:      "set",
				Usage:     "Set the theme to light or dark",
				ArgsUsage: "<light|dark>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "theme"},
				},
				Action: r.ThemeSet,
			},
			{
				Name:   "toggle",
				Usage:  "Switch between light and dark",
				Action: r.ThemeToggle,
			},
		},
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Interactive gallery browser",
		Action: r.TUI,
	}
}
