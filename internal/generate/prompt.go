package generate

import (
	"fmt"
	"strings"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

func planPrompt(p models.Preferences) string {
	var b strings.Builder
	b.WriteString("Aja como um personal trainer especialista e biomecânico. Gere um plano de treinamento completo em formato JSON.\n")
	b.WriteString("Perfil do Aluno:\n")
	fmt.Fprintf(&b, "- Gênero: %s | Idade: %s anos | Nível: %s\n", p.Gender, p.Age, p.ExperienceLevel)
	fmt.Fprintf(&b, "- Objetivo: %s | Equipamento: %s | Foco: %s\n", p.Goal, p.Equipment, strings.Join(p.FocusMuscles, ", "))
	fmt.Fprintf(&b, "- Frequência: %d dias por semana | Duração: %d minutos\n", p.WeeklyFrequency, p.SessionDuration)
	if r := strings.TrimSpace(p.Restrictions); r != "" {
		fmt.Fprintf(&b, "- Restrições: %s\n", r)
	}
	b.WriteString("\nRegras de Carga:\n")
	fmt.Fprintf(&b, "1. Calcule o \"initialWeight\" para cada exercício baseando-se no gênero (%s), idade (%s) e nível (%s).\n",
		p.Gender, p.Age, p.ExperienceLevel)
	b.WriteString("2. O warmup deve ter cargas mínimas (ex: \"2kg\" ou \"10kg\").\n")
	b.WriteString("3. Retorne um JSON com a lista 'days' contendo label, description e exercises.\n")
	return b.String()
}

func alternativesPrompt(ex models.Exercise, p models.Preferences) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Como personal trainer especialista em biomecânica, sugira exatamente %d exercícios alternativos para %q", MaxAlternatives, ex.Name)
	if ex.MuscleGroup != "" {
		fmt.Fprintf(&b, " (grupo muscular: %s)", ex.MuscleGroup)
	}
	b.WriteString(".\nContexto do Usuário:\n")
	fmt.Fprintf(&b, "- Gênero: %s | Idade: %s | Nível: %s\n", p.Gender, p.Age, p.ExperienceLevel)
	fmt.Fprintf(&b, "- Equipamento: %s | Objetivo: %s\n", p.Equipment, p.Goal)
	b.WriteString("\nRegra de Peso: Sugira um \"initialWeight\" realista para este perfil específico (ex: \"12kg\", \"30kg\").\n")
	b.WriteString("Retorne um JSON com a lista 'alternatives' contendo: name, englishName, muscleGroup, sets, reps, rest, initialWeight, imageUrl, executionTip.\n")
	return b.String()
}
