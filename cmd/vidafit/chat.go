// ABOUTME: Interactive chat with the AI nutritionist.
// ABOUTME: Keeps in-session history only; nothing is persisted.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to the AI nutritionist",
	Long: `Chat with the AI nutritionist. Your profile is shared as context so
answers are tailored to your goal and routine. History lives only for
the session — it is never saved.

With a message argument a single answer is printed. Without one an
interactive session starts; exit with "sair", "exit" or Ctrl-D.

Requires GEMINI_API_KEY (or API_KEY) in the environment or a .env file.

Examples:
  vidafit chat "posso trocar o frango por peixe?"
  vidafit chat`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		adv, err := advisor()
		if err != nil {
			return err
		}
		profile := trk.Profile()

		if len(args) == 1 {
			reply, err := adv.Chat(cmd.Context(), nil, args[0], profile)
			if err != nil {
				return fmt.Errorf("chat failed: %w", err)
			}
			fmt.Println(reply)
			return nil
		}

		color.New(color.Bold).Println("Nutricionista IA — digite sua pergunta (sair para encerrar)")
		var history []models.ChatMessage
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			msg := strings.TrimSpace(scanner.Text())
			if msg == "" {
				continue
			}
			if msg == "sair" || msg == "exit" || msg == "quit" {
				break
			}
			reply, err := adv.Chat(cmd.Context(), history, msg, profile)
			if err != nil {
				color.Red("chat failed: %v", err)
				continue
			}
			fmt.Println(reply)
			fmt.Println()
			history = append(history,
				models.ChatMessage{Role: "user", Text: msg},
				models.ChatMessage{Role: "model", Text: reply},
			)
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
