package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"smsseg/coding"
)

type cliOptions struct {
	text      string
	normalize bool
	jsonOut   bool
}

// NewRootCommand wires the smsseg subcommands.
func NewRootCommand() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "smsseg",
		Short:         "Detect SMS encoding and split messages into parts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.text, "text", "t", "", "Message text (read from stdin when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&opts.normalize, "normalize", "n", false, "Normalize new lines before processing")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Print JSON")

	rootCmd.AddCommand(newSplitCommand(opts))
	rootCmd.AddCommand(newCountCommand(opts))
	rootCmd.AddCommand(newEncodingCommand(opts))
	rootCmd.AddCommand(newNormalizeCommand(opts))
	rootCmd.AddCommand(newSanitizeCommand(opts))
	rootCmd.AddCommand(newDecodeCommand(opts))
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

func newSplitCommand(opts *cliOptions) *cobra.Command {
	var withPayload bool

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a message into SMS parts, keeping words and links whole",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, opts)
			if err != nil {
				return err
			}

			result := coding.Split(text)
			resp := SplitResponse{Encoding: result.Encoding, Parts: result.Parts}
			if withPayload {
				if resp.Payloads, err = partPayloads(result); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, resp)
			}

			fmt.Fprintf(out, "encoding: %s\n", result.Encoding)
			fmt.Fprintf(out, "parts: %d\n", len(result.Parts))
			for i, part := range result.Parts {
				fmt.Fprintf(out, "[%d] (%d) %q\n", i+1, part.Length, part.Content)
				if withPayload {
					fmt.Fprintf(out, "    %s\n", resp.Payloads[i])
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&withPayload, "payload", "p", false, "Also print the hex short_message octets of each part")
	return cmd
}

func newCountCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of SMS parts a message needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, opts)
			if err != nil {
				return err
			}

			parts := coding.Count(text)
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), CountResponse{Parts: parts})
			}
			fmt.Fprintln(cmd.OutOrStdout(), parts)
			return nil
		},
	}
}

func newEncodingCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encoding",
		Short: "Print gsm7 or ucs2 depending on the characters of a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, opts)
			if err != nil {
				return err
			}

			enc := coding.Detect(text)
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), EncodingResponse{Encoding: enc})
			}
			fmt.Fprintln(cmd.OutOrStdout(), enc)
			return nil
		},
	}
}

func newNormalizeCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Replace every line break with a carriage return",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readRaw(cmd, opts)
			if err != nil {
				return err
			}

			normalized := coding.NormalizeNewlines(text)
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), TextResponse{Text: &normalized})
			}
			_, err = io.WriteString(cmd.OutOrStdout(), normalized)
			return err
		},
	}
}

func newSanitizeCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize",
		Short: "Rewrite a message so it can be sent as gsm7",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, opts)
			if err != nil {
				return err
			}

			sanitized := coding.Sanitize(text)
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), TextResponse{Text: &sanitized})
			}
			_, err = io.WriteString(cmd.OutOrStdout(), sanitized)
			return err
		},
	}
}

func newDecodeCommand(opts *cliOptions) *cobra.Command {
	enc := coding.GSM7

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Turn hex short_message octets back into text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readText(cmd, opts)
			if err != nil {
				return err
			}
			data, err := hex.DecodeString(strings.TrimSpace(input))
			if err != nil {
				return fmt.Errorf("decode hex: %w", err)
			}

			text, err := coding.DecodePayload(data, enc)
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), TextResponse{Text: &text})
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().VarP(&encodingFlag{&enc}, "encoding", "e", "Payload encoding: gsm7 or ucs2")
	return cmd
}

// encodingFlag lets cobra parse a coding.Encoding.
type encodingFlag struct {
	enc *coding.Encoding
}

func (f *encodingFlag) String() string {
	if f.enc == nil {
		return coding.GSM7.String()
	}
	return f.enc.String()
}

func (f *encodingFlag) Set(value string) error {
	return f.enc.UnmarshalText([]byte(value))
}

func (f *encodingFlag) Type() string {
	return "encoding"
}

func newServeCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the segmentation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if listen != "" {
				cfg.WebListen = listen
			}
			if err := setupLogging(cfg); err != nil {
				return err
			}

			err := NewWebServer(cfg, NewMetrics()).Start()
			if err != nil {
				logf := LoggingFormat{Type: LogType.Startup, Path: "cli", Function: "serve"}
				logf.Level = logrus.ErrorLevel
				logf.Message = "Web server stopped"
				logf.Error = err
				logf.Print()
				return logf.ToError()
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address (overrides WEB_LISTEN)")
	return cmd
}
