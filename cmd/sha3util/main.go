package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sha3 "github.com/brendoncarroll/go-sha3"
	"github.com/brendoncarroll/go-sha3/eip191"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sha3util",
		Short:         "SHA3-256 and signed message digests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newSumCmd())
	rootCmd.AddCommand(newMessageCmd())
	rootCmd.AddCommand(newEmptyCmd())
	return rootCmd
}

func newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum [FILE...]",
		Short: "Print the SHA3-256 digest of each file, or of stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, name := range args {
				d, err := sumFile(cmd.InOrStdin(), name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v  %s\n", d, name)
			}
			return nil
		},
	}
}

func sumFile(stdin io.Reader, name string) (sha3.Digest, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return sha3.Digest{}, errors.Wrapf(err, "opening %s", name)
		}
		defer f.Close()
		r = f
	}
	h := sha3.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return sha3.Digest{}, errors.Wrapf(err, "reading %s", name)
	}
	log.WithFields(logrus.Fields{
		"name":  name,
		"bytes": n,
	}).Debug("hashed")
	return h.Finalize(), nil
}

func newMessageCmd() *cobra.Command {
	var isHex, show bool
	cmd := &cobra.Command{
		Use:   "message [TEXT]",
		Short: "Print the digest of an EIP-191 formatted message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var msg []byte
			if len(args) > 0 {
				msg = []byte(args[0])
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, "reading stdin")
				}
				msg = data
			}
			if isHex {
				data, err := hexutil.Decode(strings.TrimSpace(string(msg)))
				if err != nil {
					return errors.Wrap(err, "decoding message")
				}
				msg = data
			}
			log.Debugf("hashing message len=%d", len(msg))
			if show {
				fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(eip191.Message(msg)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), eip191.HashMessage(msg))
			return nil
		},
	}
	cmd.Flags().BoolVar(&isHex, "hex", false, "--hex to treat the message as 0x prefixed hex")
	cmd.Flags().BoolVar(&show, "show", false, "--show to also print the formatted message")
	return cmd
}

func newEmptyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "empty",
		Short: "Print the digest of empty input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), sha3.EmptyDigest)
			return nil
		},
	}
}
