package models

// FallbackImageURL replaces a missing image on catalog entries.
const FallbackImageURL = "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?q=80&w=800&auto=format&fit=crop"

// MuscleGroups lists the library's muscle groups in display order.
var MuscleGroups = []string{
	"Peito", "Costas", "Ombros", "Bíceps", "Tríceps", "Quadríceps", "Posterior", "Glúteos", "Panturrilhas", "Abdômen",
}

// LibraryExercise is shared, read-only catalog content.
type LibraryExercise struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EnglishName  string `json:"english_name"`
	MuscleGroup  string `json:"muscle_group"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	ImageURL     string `json:"image_url"`
	ExecutionTip string `json:"execution_tip"`
}

// FindLibraryExercise returns the entry with the given id.
func FindLibraryExercise(library []LibraryExercise, id string) (LibraryExercise, bool) {
	for _, ex := range library {
		if ex.ID == id {
			return ex, true
		}
	}
	return LibraryExercise{}, false
}

// LibrarySeed returns the fixed fallback catalog: three exercises per muscle group.
func LibrarySeed() []LibraryExercise {
	out := make([]LibraryExercise, len(librarySeed))
	copy(out, librarySeed)
	return out
}

var librarySeed = []LibraryExercise{
	// Peito
	{ID: "p1", Name: "Supino Reto com Barra", EnglishName: "Barbell Bench Press", MuscleGroup: "Peito", Equipment: "Barra", Difficulty: "Intermediário",
		ImageURL:     "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Mantenha os escápulas retraídas e desça a barra até o meio do peito."},
	{ID: "p2", Name: "Supino Inclinado com Halteres", EnglishName: "Incline Dumbbell Press", MuscleGroup: "Peito", Equipment: "Halteres", Difficulty: "Intermediário",
		ImageURL:     "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Foco na parte superior do peitoral, incline o banco entre 30 e 45 graus."},
	{ID: "p3", Name: "Crucifixo Máquina (Peck Deck)", EnglishName: "Chest Fly", MuscleGroup: "Peito", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1581009146145-b5ef03a7403f?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Mantenha um leve arco nos cotovelos e sinta o alongamento do peito."},

	// Costas
	{ID: "c1", Name: "Puxada Frontal Aberta", EnglishName: "Lat Pulldown", MuscleGroup: "Costas", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1603287611837-f2146f5de4e1?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Puxe a barra em direção ao peito, não atrás da nuca, focando nas dorsais."},
	{ID: "c2", Name: "Remada Curvada com Barra", EnglishName: "Bent Over Row", MuscleGroup: "Costas", Equipment: "Barra", Difficulty: "Avançado",
		ImageURL:     "https://images.unsplash.com/photo-1532384748853-8f54a8f476e2?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Mantenha a coluna neutra e puxe a barra em direção ao umbigo."},
	{ID: "c3", Name: "Barra Fixa", EnglishName: "Pull-up", MuscleGroup: "Costas", Equipment: "Peso do Corpo", Difficulty: "Avançado",
		ImageURL:     "https://images.unsplash.com/photo-1598971639058-aba3c39449d6?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Cruze as pernas e foque em levar o queixo acima da barra."},

	// Ombros
	{ID: "o1", Name: "Desenvolvimento com Halteres", EnglishName: "Dumbbell Shoulder Press", MuscleGroup: "Ombros", Equipment: "Halteres", Difficulty: "Intermediário",
		ImageURL:     "https://images.unsplash.com/photo-1541534741688-6078c64b5ec5?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Estenda os braços totalmente sem bater os halteres no topo."},
	{ID: "o2", Name: "Elevação Lateral", EnglishName: "Lateral Raise", MuscleGroup: "Ombros", Equipment: "Halteres", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1591940742878-13aba4b7a35e?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Mantenha os braços levemente à frente da linha do corpo."},
	{ID: "o3", Name: "Desenvolvimento Arnold", EnglishName: "Arnold Press", MuscleGroup: "Ombros", Equipment: "Halteres", Difficulty: "Intermediário",
		ImageURL:     "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Rode os punhos durante o movimento para atingir todas as cabeças do deltoide."},

	// Bíceps
	{ID: "b1", Name: "Rosca Direta com Barra W", EnglishName: "EZ Bar Curl", MuscleGroup: "Bíceps", Equipment: "Barra", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1581009146145-b5ef03a7403f?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Mantenha os cotovelos colados ao corpo e evite balançar o tronco."},
	{ID: "b2", Name: "Rosca Martelo", EnglishName: "Hammer Curl", MuscleGroup: "Bíceps", Equipment: "Halteres", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1590239068512-6367f8d3bd1d?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Pegada neutra (palmas viradas uma para a outra) para focar no braquial."},
	{ID: "b3", Name: "Rosca Concentrada", EnglishName: "Concentration Curl", MuscleGroup: "Bíceps", Equipment: "Halteres", Difficulty: "Intermediário",
		ImageURL:     "https://images.unsplash.com/photo-1536922246289-88c42f957773?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Apoie o braço na parte interna da coxa para isolamento máximo."},

	// Tríceps
	{ID: "t1", Name: "Tríceps Pulley (Corda)", EnglishName: "Triceps Rope Pushdown", MuscleGroup: "Tríceps", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1596333143323-094383c31671?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Abra a corda no final do movimento para contração máxima."},
	{ID: "t2", Name: "Tríceps Testa com Barra W", EnglishName: "Skull Crusher", MuscleGroup: "Tríceps", Equipment: "Barra", Difficulty: "Intermediário",
		ImageURL:     "https://images.unsplash.com/photo-1581009146145-b5ef03a7403f?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Desça a barra em direção à testa mantendo os cotovelos paralelos."},
	{ID: "t3", Name: "Mergulho no Banco", EnglishName: "Bench Dips", MuscleGroup: "Tríceps", Equipment: "Peso do Corpo", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1598575435261-0c3dd4ed3015?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Mantenha as costas próximas ao banco durante toda a descida."},

	// Quadríceps
	{ID: "q1", Name: "Agachamento Livre", EnglishName: "Barbell Squat", MuscleGroup: "Quadríceps", Equipment: "Barra", Difficulty: "Avançado",
		ImageURL:     "https://images.unsplash.com/photo-1566241440091-ec10de8db2e1?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Desça até as coxas ficarem paralelas ao chão ou um pouco mais."},
	{ID: "q2", Name: "Leg Press 45", EnglishName: "Leg Press", MuscleGroup: "Quadríceps", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1590439474864-3da7a95788d4?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Não estenda totalmente os joelhos (bloqueio) no topo do movimento."},
	{ID: "q3", Name: "Cadeira Extensora", EnglishName: "Leg Extension", MuscleGroup: "Quadríceps", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1594737625785-a6bad33ff117?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Ajuste o rolo logo acima dos tornozelos e segure firme nos apoios."},

	// Posterior
	{ID: "ps1", Name: "Stiff com Barra", EnglishName: "Stiff-Legged Deadlift", MuscleGroup: "Posterior", Equipment: "Barra", Difficulty: "Avançado",
		ImageURL:     "https://images.unsplash.com/photo-1597452485669-2c7bb5fef90d?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Mantenha as pernas quase retas e a coluna totalmente neutra."},
	{ID: "ps2", Name: "Cadeira Flexora", EnglishName: "Seated Leg Curl", MuscleGroup: "Posterior", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1605296867304-46d5465a13f1?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Ajuste o encosto para que seus joelhos fiquem alinhados com o eixo da máquina."},
	{ID: "ps3", Name: "Mesa Flexora", EnglishName: "Lying Leg Curl", MuscleGroup: "Posterior", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1584466977773-e625c37cdd50?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Mantenha o quadril colado ao banco durante o movimento."},

	// Glúteos
	{ID: "gl1", Name: "Elevação Pélvica", EnglishName: "Hip Thrust", MuscleGroup: "Glúteos", Equipment: "Barra", Difficulty: "Intermediário",
		ImageURL:     "https://images.unsplash.com/photo-1590439474864-3da7a95788d4?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Contraia os glúteos no topo por 1-2 segundos."},
	{ID: "gl2", Name: "Agachamento Sumô", EnglishName: "Sumo Squat", MuscleGroup: "Glúteos", Equipment: "Halteres", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1590239068512-6367f8d3bd1d?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Pés mais afastados que a largura dos ombros e pontas dos pés para fora."},
	{ID: "gl3", Name: "Abdução de Quadril", EnglishName: "Hip Abduction", MuscleGroup: "Glúteos", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1597452485669-2c7bb5fef90d?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Foco no glúteo médio, mantenha o tronco firme."},

	// Panturrilhas
	{ID: "pn1", Name: "Gêmeos em Pé", EnglishName: "Standing Calf Raise", MuscleGroup: "Panturrilhas", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1605296867304-46d5465a13f1?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Alongue bem no fundo e suba até a ponta máxima dos pés."},
	{ID: "pn2", Name: "Gêmeos Sentado", EnglishName: "Seated Calf Raise", MuscleGroup: "Panturrilhas", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Mantenha um ritmo controlado, evitando o uso de impulso."},
	{ID: "pn3", Name: "Panturrilha no Leg Press", EnglishName: "Leg Press Calf Raise", MuscleGroup: "Panturrilhas", Equipment: "Máquina", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1590439474864-3da7a95788d4?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Deixe apenas as pontas dos pés na plataforma."},

	// Abdômen
	{ID: "a1", Name: "Abdominal Supra (Solo)", EnglishName: "Crunch", MuscleGroup: "Abdômen", Equipment: "Peso do Corpo", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1594737625785-a6bad33ff117?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Tire apenas os ombros do chão, focando na contração do abdômen."},
	{ID: "a2", Name: "Prancha Isométrica", EnglishName: "Plank", MuscleGroup: "Abdômen", Equipment: "Peso do Corpo", Difficulty: "Iniciante",
		ImageURL:     "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Mantenha o corpo reto como uma prancha, sem deixar o quadril cair."},
	{ID: "a3", Name: "Elevação de Pernas", EnglishName: "Leg Raise", MuscleGroup: "Abdômen", Equipment: "Peso do Corpo", Difficulty: "Intermediário",
		ImageURL:     "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?q=80&w=800&auto=format&fit=crop",
		ExecutionTip: "Desça as pernas lentamente sem encostar os calcanhares no chão."},
}
