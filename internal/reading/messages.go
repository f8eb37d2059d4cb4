package reading

// Texts shown by every transport around a reading
const (
	WelcomeText = "🍏 Добро пожаловать в Ивент Таро!\n\n" +
		"Здесь карты расскажут:\n" +
		"• Какая будет атмосфера среди гостей 🥂\n" +
		"• Как пройдут шоу на сцене 🎤\n" +
		"• Всё ли будет в порядке с техникой ⚙️\n" +
		"• И порадуют ли вас финансы 💰\n\n" +
		"Введите команду /rasclad, чтобы узнать предсказание!"

	ShufflingText = "🔮✨ Перемешиваем карты..."

	RepeatText = "🔮 Хотите повторить?\n" +
		"💬 Помните: только вы создаёте свою судьбу!"

	RepeatButtonText = "🌟 Сделать новый расклад"
)

// Orientation labels
const (
	UprightLabel  = "Прямая"
	ReversedLabel = "Перевёрнутая"
)
