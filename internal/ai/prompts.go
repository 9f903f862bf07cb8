// ABOUTME: Prompt construction for plan generation, photo analysis and chat.
// ABOUTME: Prompts follow the EBN protocol persona and request strict JSON.
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

const photoPrompt = "Analise este prato seguindo o Protocolo EBN. Identifique ingredientes e macros. Forneça feedback focado em densidade nutricional. Retorne JSON."

// photoAnalysisSchema pins the PhotoAnalysis response shape.
var photoAnalysisSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"identifiedFoods": map[string]any{
			"type": "ARRAY",
			"items": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"name":     map[string]any{"type": "STRING"},
					"calories": map[string]any{"type": "NUMBER"},
				},
				"required": []string{"name", "calories"},
			},
		},
		"estimatedMacros": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"calories": map[string]any{"type": "NUMBER"},
				"protein":  map[string]any{"type": "NUMBER"},
				"carbs":    map[string]any{"type": "NUMBER"},
				"fats":     map[string]any{"type": "NUMBER"},
			},
			"required": []string{"calories", "protein", "carbs", "fats"},
		},
		"feedback": map[string]any{"type": "STRING"},
	},
	"required": []string{"identifiedFoods", "estimatedMacros", "feedback"},
}

func nutritionPrompt(p models.Profile) string {
	return fmt.Sprintf(`Aja como um Nutricionista Master (Protocolo EBN).
1. Calcule a TMB usando Mifflin-St Jeor para: %s, %.1fkg, %.0fcm, %d anos.
2. Aplique fator de atividade %s e meta %s.
3. Distribua Macros: Proteína fixa (2.0g/kg), Gordura (0.8g/kg), Carbo (Saldo).
4. Crie %d refeições. Inclua foodItems com quantidades claras e categoria para lista de mercado.
Evite: %s. Prefira: %s.
Retorne JSON com dailyTarget (calories, protein, carbs, fats) e meals (id, name, description, type, time, foodItems, macros).`,
		p.Gender, p.Weight, p.Height, p.Age,
		p.ActivityLevel, p.Goal,
		p.MealsPerDay,
		joinOr(append(append([]string{}, p.Intolerances...), p.Dislikes...), "nada"),
		joinOr(p.PreferredFoods, "variado"))
}

func workoutPrompt(p models.Profile) string {
	return fmt.Sprintf(`Aja como um Mestre MuscleWiki. Crie um treino proporcional para %d dias/semana.
Preferência: %s. Sexo: %s. Objetivo: %s. Local: %s. Tempo por sessão: %d minutos.
Limitações: %s.

Distribua os grupos musculares de forma equilibrada. 5 exercícios + Alongamento por split.
Cada exercício DEVE conter:
- id (ex: chest_01)
- name (ex: Supino com Barra)
- difficulty (Iniciante, Intermediário, Avançado)
- target (ex: Peitoral Médio)
- media: { front_gif: URL, side_gif: URL } (URLs do MuscleWiki)
- steps (instruções técnicas passo a passo)
- sets, reps e rest (descanso em segundos)

Retorne JSON com weeklySchedule (Segunda a Domingo, letra do split ou omitido para descanso) e splits detalhados.`,
		p.WorkoutDays,
		p.WorkoutSplitPreference, p.Gender, p.Goal, p.WorkoutLocation, p.WorkoutTime,
		joinOr(p.ExerciseLimitations, "nenhuma"))
}

func chatSystemPrompt(p models.Profile) string {
	profileJSON, _ := json.Marshal(p)
	return fmt.Sprintf("Você é o Nutri IA Expert. Siga o Protocolo EBN. Perfil do usuário: %s. Seja técnico mas acessível.", profileJSON)
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
