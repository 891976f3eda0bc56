package models

// Instrument identifies what a player brings to the rehearsal room.
// It drives how song content is rendered for that player: vocalists get
// lyrics only, everyone else gets chords paired with lyrics.
type Instrument string

const (
	InstrumentNone      Instrument = "none"
	InstrumentDrums     Instrument = "drums"
	InstrumentGuitars   Instrument = "guitars"
	InstrumentBass      Instrument = "bass"
	InstrumentSaxophone Instrument = "saxophone"
	InstrumentKeyboards Instrument = "keyboards"
	InstrumentVocals    Instrument = "vocals"
)

// Instruments lists every instrument a user may register with.
var Instruments = []Instrument{
	InstrumentNone,
	InstrumentDrums,
	InstrumentGuitars,
	InstrumentBass,
	InstrumentSaxophone,
	InstrumentKeyboards,
	InstrumentVocals,
}

// ValidInstrument reports whether s is one of the allowed instrument tags.
func ValidInstrument(s string) bool {
	for _, i := range Instruments {
		if string(i) == s {
			return true
		}
	}
	return false
}

// User represents a registered rehearsal participant.
type User struct {
	ID         string     `json:"id"`         // Unique identifier for the user (UUID)
	Username   string     `json:"username"`   // Unique login name, at least 3 characters
	Password   string     `json:"-"`          // bcrypt hash, never serialized
	Instrument Instrument `json:"instrument"` // Declared instrument, "none" for admins
	IsAdmin    bool       `json:"isAdmin"`    // Whether this user runs the session
}
