package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars Emoji = "📖" // reading configuration
	EmojiConfig  Emoji = "🔧" // showing configuration
	EmojiMute    Emoji = "🔇" // quiet mode

	EmojiRequest     Emoji = "📤" // sending a command to the registrar
	EmojiResponse    Emoji = "📥" // a result returned by the registrar
	EmojiPending     Emoji = "⏳" // an accepted command still being processed
	EmojiRepeatOnce  Emoji = "🔁" // polling once more
	EmojiUpdate      Emoji = "📡" // updating domains, records, or nameservers
	EmojiCreate      Emoji = "🐣" // creating records or nameserver sets
	EmojiDelete      Emoji = "💀" // deleting records
	EmojiAlreadyDone Emoji = "🤷" // the remote state was already as requested

	EmojiNow    Emoji = "🏃" // an event that is happening now or immediately
	EmojiAlarm  Emoji = "⏰" // waiting before the next attempt
	EmojiSignal Emoji = "🚨" // catching signals or cancellation
	EmojiBye    Emoji = "👋" // bye!

	EmojiGood        Emoji = "😊" // good news
	EmojiUserError   Emoji = "😡" // configuration mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible configuration mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiWarning     Emoji = "😐" // warnings about something unusual
	EmojiTimeout     Emoji = "⌛" // the registrar or the client gave up waiting
	EmojiImpossible  Emoji = "🤯" // the impossible happened
	EmojiHint        Emoji = "💡" // Hints
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
