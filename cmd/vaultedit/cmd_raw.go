package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vaultedit/internal/codec"
	"vaultedit/internal/document"
)

var rawOut string

var decryptCmd = &cobra.Command{
	Use:   "decrypt <save-file>",
	Short: "Decrypt a save to JSON text",
	Long: `Decrypt a save file and print (or write with -o) the JSON plaintext.
The output re-encrypts byte-identically as long as the text is not reformatted.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecrypt,
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <json-file>",
	Short: "Encrypt JSON text into a save file",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncrypt,
}

func init() {
	decryptCmd.Flags().StringVarP(&rawOut, "output", "o", "", "write to file instead of stdout")
	encryptCmd.Flags().StringVarP(&rawOut, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(encryptCmd)
}

func emit(data []byte) error {
	if rawOut == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(rawOut, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read save file: %w", err)
	}
	plain, err := codec.Decrypt(raw)
	if err != nil {
		return err
	}
	return emit([]byte(plain))
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read json file: %w", err)
	}
	// Validate before encrypting: an unparseable save is worse than an error.
	if _, err := document.Parse(string(raw)); err != nil {
		return err
	}
	return emit(codec.Encrypt(string(raw)))
}
