package telegram

const (
	cmdStart   = "/start"
	cmdHelp    = "/help"
	cmdPreview = "/preview"

	replyTimeLayout = "2006-01-02 (Mon) 15:04"

	msgWelcome = "👋 *PrimeRing* 빠른 일정 입력입니다.\n\n일정을 그대로 보내 주세요.\n_예: \"내일 오후 2시 디자인 회의\"_"
	msgHelp    = "*사용법*\n\n• 일정 문장을 보내면 바로 등록됩니다.\n• `/preview 내일 오후 2시 회의` 로 등록 전에 확인할 수 있습니다.\n• 날짜는 \"오늘\", \"내일\" 또는 \"12월 25일\" 처럼 적어 주세요."
	msgNoDate  = "⚠️ 날짜를 찾지 못했습니다. \"내일\", \"오늘\" 또는 \"12월 25일\" 처럼 날짜를 함께 적어 주세요."
	msgFailed  = "일정을 저장하지 못했습니다. 잠시 후 다시 시도해 주세요."
)
