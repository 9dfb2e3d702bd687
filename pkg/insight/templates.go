package insight

import "fmt"

type template struct {
	when   func(Stats) bool
	render func(Stats, Language) string
}

func pick(lang Language, en, tr, es string) string {
	switch lang {
	case Turkish:
		return tr
	case Spanish:
		return es
	}
	return en
}

// templates is the candidate pool. A template is eligible only when its
// condition holds for the given stats; render text must stay in sync across
// the three languages (argument order is pinned with explicit indexes).
var templates = []template{
	{
		when: func(s Stats) bool { return s.TopName != "" },
		render: func(s Stats, lang Language) string {
			return fmt.Sprintf(pick(lang,
				"Your biggest subscription is %[1]s at %[2]s per month. Check that you still use it enough to justify the cost.",
				"En büyük aboneliğiniz %[1]s, aylık %[2]s. Maliyetine değecek kadar kullandığınızdan emin olun.",
				"Tu suscripción más cara es %[1]s, con %[2]s al mes. Comprueba que la usas lo suficiente para justificar el gasto.",
			), s.TopName, s.Currency.Format(s.TopAmount))
		},
	},
	{
		when: func(s Stats) bool { return s.MonthlyTotal > 0 },
		render: func(s Stats, lang Language) string {
			return fmt.Sprintf(pick(lang,
				"You spend %[1]s on subscriptions every month.",
				"Aboneliklere her ay %[1]s harcıyorsunuz.",
				"Gastas %[1]s en suscripciones cada mes.",
			), s.Currency.Format(s.MonthlyTotal))
		},
	},
	{
		when: func(s Stats) bool { return s.AnnualTotal > 0 },
		render: func(s Stats, lang Language) string {
			return fmt.Sprintf(pick(lang,
				"Over a full year your subscriptions add up to %[1]s.",
				"Abonelikleriniz yıl boyunca toplam %[1]s tutuyor.",
				"En un año completo tus suscripciones suman %[1]s.",
			), s.Currency.Format(s.AnnualTotal))
		},
	},
	{
		when: func(s Stats) bool { return s.YearlyCount == 0 && s.MonthlyTotal > 0 },
		render: func(s Stats, lang Language) string {
			return pick(lang,
				"All of your plans bill monthly. Switching some to annual billing often saves 15-20%.",
				"Tüm planlarınız aylık faturalanıyor. Bazılarını yıllığa çevirmek genellikle %15-20 tasarruf sağlar.",
				"Todos tus planes se facturan mensualmente. Pasar algunos a facturación anual suele ahorrar un 15-20%.",
			)
		},
	},
	{
		when: func(s Stats) bool { return s.TopCategoryCount > 1 },
		render: func(s Stats, lang Language) string {
			return fmt.Sprintf(pick(lang,
				"Most of your spend goes to %[1]s: %[2]s per month across %[3]d plans.",
				"Harcamanızın çoğu %[1]s kategorisinde: %[3]d planda aylık %[2]s.",
				"La mayor parte de tu gasto va a %[1]s: %[2]s al mes en %[3]d planes.",
			), s.TopCategoryLabel, s.Currency.Format(s.TopCategoryTotal), s.TopCategoryCount)
		},
	},
	{
		when: func(s Stats) bool { return s.DueSoonCount == 1 },
		render: func(s Stats, lang Language) string {
			return pick(lang,
				"One subscription charges within the next 7 days.",
				"Önümüzdeki 7 gün içinde bir abonelik ücreti çekilecek.",
				"Una suscripción se cobrará en los próximos 7 días.",
			)
		},
	},
	{
		when: func(s Stats) bool { return s.DueSoonCount > 1 },
		render: func(s Stats, lang Language) string {
			return fmt.Sprintf(pick(lang,
				"%[1]d subscriptions charge within the next 7 days.",
				"Önümüzdeki 7 gün içinde %[1]d abonelik ücreti çekilecek.",
				"%[1]d suscripciones se cobrarán en los próximos 7 días.",
			), s.DueSoonCount)
		},
	},
	{
		when: func(s Stats) bool { return s.OverdueTaskCount > 0 },
		render: func(s Stats, lang Language) string {
			return fmt.Sprintf(pick(lang,
				"%[1]d of your responsibilities are overdue. Knock out the oldest one first.",
				"%[1]d sorumluluğunuzun tarihi geçmiş. Önce en eskisini halledin.",
				"Tienes %[1]d responsabilidades vencidas. Empieza por la más antigua.",
			), s.OverdueTaskCount)
		},
	},
	{
		when: func(s Stats) bool { return s.NextTaskTitle != "" },
		render: func(s Stats, lang Language) string {
			return fmt.Sprintf(pick(lang,
				"Next up: %[1]s, due in %[2]d days.",
				"Sıradaki: %[1]s, %[2]d gün içinde.",
				"Lo próximo: %[1]s, vence en %[2]d días.",
			), s.NextTaskTitle, s.NextTaskDays)
		},
	},
	{
		when: func(s Stats) bool { return s.RecurringTaskCount > 0 },
		render: func(s Stats, lang Language) string {
			return fmt.Sprintf(pick(lang,
				"You track %[1]d recurring responsibilities. Recurring chores are the easiest to put on autopilot.",
				"%[1]d tekrarlayan sorumluluk takip ediyorsunuz. Tekrarlayan işler otomatiğe bağlamak için en uygunlarıdır.",
				"Sigues %[1]d responsabilidades recurrentes. Las tareas recurrentes son las más fáciles de automatizar.",
			), s.RecurringTaskCount)
		},
	},
	{
		when: func(s Stats) bool { return s.OpenTaskCount == 0 && s.SubscriptionCount > 0 },
		render: func(s Stats, lang Language) string {
			return pick(lang,
				"No open responsibilities. Your list is clear.",
				"Açık sorumluluğunuz yok. Listeniz temiz.",
				"No tienes responsabilidades pendientes. Tu lista está limpia.",
			)
		},
	},
	{
		when: func(s Stats) bool { return s.MonthlyBudget > 0 && s.MonthlyTotal > s.MonthlyBudget },
		render: func(s Stats, lang Language) string {
			over := s.MonthlyTotal - s.MonthlyBudget
			return fmt.Sprintf(pick(lang,
				"You are %[1]s over your monthly budget of %[2]s.",
				"Aylık %[2]s bütçenizi %[1]s aşıyorsunuz.",
				"Superas en %[1]s tu presupuesto mensual de %[2]s.",
			), s.Currency.Format(over), s.Currency.Format(s.MonthlyBudget))
		},
	},
	{
		when: func(s Stats) bool {
			return s.MonthlyBudget > 0 && s.MonthlyTotal > 0 && s.MonthlyTotal <= s.MonthlyBudget
		},
		render: func(s Stats, lang Language) string {
			left := s.MonthlyBudget - s.MonthlyTotal
			return fmt.Sprintf(pick(lang,
				"You are under budget, with %[1]s of headroom this month.",
				"Bütçenizin altındasınız, bu ay %[1]s alanınız var.",
				"Estás por debajo del presupuesto, con %[1]s de margen este mes.",
			), s.Currency.Format(left))
		},
	},
	{
		when: func(s Stats) bool { return s.SubscriptionCount >= 5 },
		render: func(s Stats, lang Language) string {
			return fmt.Sprintf(pick(lang,
				"You have %[1]d subscriptions. An occasional audit usually finds at least one worth cancelling.",
				"%[1]d aboneliğiniz var. Ara sıra bir gözden geçirme genellikle iptal edilmeye değer en az bir tane çıkarır.",
				"Tienes %[1]d suscripciones. Una revisión de vez en cuando suele encontrar al menos una que cancelar.",
			), s.SubscriptionCount)
		},
	},
}

func allClear(lang Language) string {
	return pick(lang,
		"All clear. Nothing tracked yet - add a subscription or a responsibility to get started.",
		"Her şey yolunda. Henüz bir kayıt yok - başlamak için bir abonelik veya sorumluluk ekleyin.",
		"Todo en orden. Aún no hay nada registrado: añade una suscripción o una responsabilidad para empezar.",
	)
}
