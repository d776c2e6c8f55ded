// Package grammar holds the compiled semantic-grammar tables shared by
// haiku generation and syntax checking: a fixed dictionary of tokens
// tagged with part-of-speech feature bitmasks, and a fixed list of haiku
// frames built from those features. The tables are data, not algorithm;
// they are transliterated from the reference implementation's Dict[] and
// Frame[][] tables and must not be reordered or renumbered, since
// dictionary index and frame shape are both part of the mining preimage.
package grammar

// Feature bitmask constants, adapted from systemic grammar (Winograd,
// 1972), as used by the reference semantic grammar. Values match the
// reference implementation bit-for-bit; they are part of the mining
// preimage via Dict's feature masks and must never be renumbered.
const (
	FING    uint32 = 1      // -ing verb form
	FINF    uint32 = 2      // infinitive verb form
	FMOTION uint32 = 4      // motion verb
	FNS     uint32 = 8      // singular noun
	FNPL    uint32 = 16     // plural noun
	FMASS   uint32 = 32     // mass noun
	FAMB    uint32 = 64     // ambient adjective
	FTIMED  uint32 = 128    // time-of-day noun/adjective
	FTIMEY  uint32 = 256    // time-of-year noun/adjective
	FAT     uint32 = 512    // locative "at"
	FON     uint32 = 1024   // locative "on"
	FIN     uint32 = 2048   // locative "in"
	FPREP   uint32 = 0x1000 // preposition
	FADJ    uint32 = 0x2000 // adjective
	FOP     uint32 = 0x4000 // other / function word
	fDets   uint32 = 0x8000 // unused determiner-singular class (reserved)
	fDetPl  uint32 = 0x10000
	FXLIT   uint32 = 0x20000 // literal dictionary index, not a feature class
)

// fDets and fDetPl are reserved feature classes present in the reference
// grammar's bit layout but never assigned to a dictionary entry or frame
// slot; kept as named constants so the bit positions of FOP and FXLIT
// match the reference exactly, rather than leaving an unexplained gap.

// FVB, FN, FTIME, FLOC, FNOUN are derived composite feature classes used
// by several frame slots.
const (
	FVB   = FINF | FMOTION
	FN    = FNS | FNPL
	FTIME = FTIMED | FTIMEY
	FLOC  = FAT | FON | FIN
	FNOUN = FNS | FNPL | FMASS | FTIME | FLOC
)

// Literal token selectors: a frame slot with FXLIT set selects the
// dictionary entry at index (slot & 0xFF) rather than matching by feature.
const (
	SNL     = FXLIT + 1
	SCO     = FXLIT + 2
	SMD     = FXLIT + 3
	SLIKE   = FXLIT + 4
	SA      = FXLIT + 5
	STHE    = FXLIT + 6
	SOF     = FXLIT + 7
	SNO     = FXLIT + 8
	SS      = FXLIT + 9
	SAFTER  = FXLIT + 10
	SBEFORE = FXLIT + 11

	SAT    = FXLIT + 12
	SIN    = FXLIT + 13
	SON    = FXLIT + 14
	SUNDER = FXLIT + 15
	SABOVE = FXLIT + 16
	SBELOW = FXLIT + 17
)

// Sizing constants from the reference grammar.
const (
	HaikuSize = 256 // expanded haiku text buffer size
	MaxDict   = 256 // dictionary capacity
	MaxH      = 16  // haiku slots / tokens per stream
	NFrames   = 10  // number of compiled frames
)

// Entry is a dictionary entry: a printable token (optionally carrying a
// leading backspace escape or trailing newline) and its feature mask.
type Entry struct {
	Tok string
	Fe  uint32
}

// Dict is the compiled dictionary. Index 0 is always the sentinel "NIL"
// entry with a zero feature mask, so any out-of-range or unassigned
// index degrades to an entry that fails every non-zero frame slot.
var Dict = [MaxDict]Entry{
	// Adverbs and function words
	{"NIL", 0},
	{"\n", FOP},
	{"\b:", FOP},
	{"\b--", FOP},
	{"like", FOP},
	{"a", FOP},
	{"the", FOP},
	{"of", FOP},
	{"no", FOP},
	{"\bs", FOP},
	{"after", FOP},
	{"before", FOP},

	// Prepositions
	{"at", FPREP},
	{"in", FPREP},
	{"on", FPREP},
	{"under", FPREP},
	{"above", FPREP},
	{"below", FPREP},

	// Verbs - intransitive ING and MOTION
	{"arriving", FING | FMOTION},
	{"departing", FING | FMOTION},
	{"going", FING | FMOTION},
	{"coming", FING | FMOTION},
	{"creeping", FING | FMOTION},
	{"dancing", FING | FMOTION},
	{"riding", FING | FMOTION},
	{"strutting", FING | FMOTION},
	{"leaping", FING | FMOTION},
	{"leaving", FING | FMOTION},
	{"entering", FING | FMOTION},
	{"drifting", FING | FMOTION},
	{"returning", FING | FMOTION},
	{"rising", FING | FMOTION},
	{"falling", FING | FMOTION},
	{"rushing", FING | FMOTION},
	{"soaring", FING | FMOTION},
	{"travelling", FING | FMOTION},
	{"turning", FING | FMOTION},
	{"singing", FING | FMOTION},
	{"walking", FING | FMOTION},
	// Verbs - intransitive ING
	{"crying", FING},
	{"weeping", FING},
	{"lingering", FING},
	{"pausing", FING},
	{"shining", FING},
	// motion intransitive infinitive
	{"fall", FINF | FMOTION},
	{"flow", FINF | FMOTION},
	{"wander", FINF | FMOTION},
	{"disappear", FINF | FMOTION},
	// intransitive infinitive
	{"wait", FINF},
	{"bloom", FINF},
	{"doze", FINF},
	{"dream", FINF},
	{"laugh", FINF},
	{"meditate", FINF},
	{"listen", FINF},
	{"sing", FINF},
	{"decay", FINF},
	{"cling", FINF},
	{"grow", FINF},
	{"forget", FINF},
	{"remain", FINF},

	// Adjectives - physical
	{"arid", FADJ},
	{"abandoned", FADJ},
	{"aged", FADJ},
	{"ancient", FADJ},
	{"full", FADJ},
	{"glorious", FADJ},
	{"good", FADJ},
	{"beautiful", FADJ},
	{"first", FADJ},
	{"last", FADJ},
	{"forsaken", FADJ},
	{"sad", FADJ},
	{"mandarin", FADJ},
	{"naked", FADJ},
	{"nameless", FADJ},
	{"old", FADJ},

	// Ambient adjectives
	{"quiet", FADJ | FAMB},
	{"peaceful", FADJ},
	{"still", FADJ},
	{"tranquil", FADJ},
	{"bare", FADJ},

	// Time interval adjectives or nouns
	{"evening", FADJ | FTIMED},
	{"morning", FADJ | FTIMED},
	{"afternoon", FADJ | FTIMED},
	{"spring", FADJ | FTIMEY},
	{"summer", FADJ | FTIMEY},
	{"autumn", FADJ | FTIMEY},
	{"winter", FADJ | FTIMEY},

	// Adjectives - physical
	{"broken", FADJ},
	{"thick", FADJ},
	{"thin", FADJ},
	{"little", FADJ},
	{"big", FADJ},
	// Physical + ambient adjectives
	{"parched", FADJ | FAMB},
	{"withered", FADJ | FAMB},
	{"worn", FADJ | FAMB},
	// Physical adj -- material things
	{"soft", FADJ},
	{"bitter", FADJ},
	{"bright", FADJ},
	{"brilliant", FADJ},
	{"cold", FADJ},
	{"cool", FADJ},
	{"crimson", FADJ},
	{"dark", FADJ},
	{"frozen", FADJ},
	{"grey", FADJ},
	{"hard", FADJ},
	{"hot", FADJ},
	{"scarlet", FADJ},
	{"shallow", FADJ},
	{"sharp", FADJ},
	{"warm", FADJ},
	{"close", FADJ},
	{"calm", FADJ},
	{"cruel", FADJ},
	{"drowned", FADJ},
	{"dull", FADJ},
	{"dead", FADJ},
	{"sick", FADJ},
	{"deep", FADJ},
	{"fast", FADJ},
	{"fleeting", FADJ},
	{"fragrant", FADJ},
	{"fresh", FADJ},
	{"loud", FADJ},
	{"moonlit", FADJ | FAMB},
	{"sacred", FADJ},
	{"slow", FADJ},

	// Nouns top-level -- humans
	{"traveller", FNS},
	{"poet", FNS},
	{"beggar", FNS},
	{"monk", FNS},
	{"warrior", FNS},
	{"wife", FNS},
	{"courtesan", FNS},
	{"dancer", FNS},
	{"daemon", FNS},

	// Animals
	{"frog", FNS},
	{"hawks", FNPL},
	{"larks", FNPL},
	{"cranes", FNPL},
	{"crows", FNPL},
	{"ducks", FNPL},
	{"birds", FNPL},
	{"skylark", FNS},
	{"sparrows", FNPL},
	{"minnows", FNPL},
	{"snakes", FNPL},
	{"dog", FNS},
	{"monkeys", FNPL},
	{"cats", FNPL},
	{"cuckoos", FNPL},
	{"mice", FNPL},
	{"dragonfly", FNS},
	{"butterfly", FNS},
	{"firefly", FNS},
	{"grasshopper", FNS},
	{"mosquitos", FNPL},

	// Plants
	{"trees", FNPL | FIN | FAT},
	{"roses", FNPL},
	{"cherries", FNPL},
	{"flowers", FNPL},
	{"lotuses", FNPL},
	{"plums", FNPL},
	{"poppies", FNPL},
	{"violets", FNPL},
	{"oaks", FNPL | FAT},
	{"pines", FNPL | FAT},
	{"chestnuts", FNPL},
	{"clovers", FNPL},
	{"leaves", FNPL},
	{"petals", FNPL},
	{"thorns", FNPL},
	{"blossoms", FNPL},
	{"vines", FNPL},
	{"willows", FNPL},

	// Things
	{"mountain", FNS | FAT | FON},
	{"moor", FNS | FAT | FON | FIN},
	{"sea", FNS | FAT | FON | FIN},
	{"shadow", FNS | FIN},
	{"skies", FNPL | FIN},
	{"moon", FNS},
	{"star", FNS},
	{"stone", FNS},
	{"cloud", FNS},
	{"bridge", FNS | FON | FAT},
	{"gate", FNS | FAT},
	{"temple", FNS | FIN | FAT},
	{"hovel", FNS | FIN | FAT},
	{"forest", FNS | FIN | FAT},
	{"grave", FNS | FIN | FAT | FON},
	{"stream", FNS | FIN | FAT | FON},
	{"pond", FNS | FIN | FAT | FON},
	{"island", FNS | FON | FAT},
	{"bell", FNS},
	{"boat", FNS | FIN | FON},
	{"sailboat", FNS | FIN | FON},
	{"bon fire", FNS | FAT},
	{"straw mat", FNS | FON},
	{"cup", FNS | FIN},
	{"nest", FNS | FIN},
	{"sun", FNS | FIN},
	{"village", FNS | FIN},
	{"tomb", FNS | FIN | FAT},
	{"raindrop", FNS | FIN},
	{"wave", FNS | FIN},
	{"wind", FNS | FIN},
	{"tide", FNS | FIN | FAT},
	{"fan", FNS},
	{"hat", FNS},
	{"sandal", FNS},
	{"shroud", FNS},
	{"pole", FNS},

	// Mass - substance
	{"water", FON | FIN | FMASS | FAMB},
	{"air", FON | FIN | FMASS | FAMB},
	{"mud", FON | FIN | FMASS | FAMB},
	{"rain", FIN | FMASS | FAMB},
	{"thunder", FIN | FMASS | FAMB},
	{"ice", FON | FIN | FMASS | FAMB},
	{"snow", FON | FIN | FMASS | FAMB},
	{"salt", FON | FIN | FMASS},
	{"hail", FIN | FMASS | FAMB},
	{"mist", FIN | FMASS | FAMB},
	{"dew", FIN | FMASS | FAMB},
	{"foam", FIN | FMASS | FAMB},
	{"frost", FIN | FMASS | FAMB},
	{"smoke", FIN | FMASS | FAMB},
	{"twilight", FIN | FAT | FMASS | FAMB},
	{"earth", FON | FIN | FMASS},
	{"grass", FON | FIN | FMASS},
	{"bamboo", FMASS},
	{"gold", FMASS},
	{"grain", FMASS},
	{"rice", FMASS},
	{"tea", FIN | FMASS},
	{"light", FIN | FMASS | FAMB},
	{"darkness", FIN | FMASS | FAMB},
	{"firelight", FIN | FMASS | FAMB},
	{"sunlight", FIN | FMASS | FAMB},
	{"sunshine", FIN | FMASS | FAMB},

	// Abstract nouns and acts
	{"journey", FNS | FON},
	{"serenity", FMASS},
	{"dusk", FTIMED},
	{"glow", FNS},
	{"scent", FNS},
	{"sound", FNS},
	{"silence", FNS},
	{"voice", FNS},
	{"day", FNS | FTIMED},
	{"night", FNS | FTIMED},
	{"sunrise", FNS | FTIMED},
	{"sunset", FNS | FTIMED},
	{"midnight", FNS | FTIMED},
	{"equinox", FNS | FTIMEY},
	{"noon", FNS | FTIMED},
}

// Frames is the compiled frame table, each a 16-slot shape of feature
// masks and literal selectors. A zero slot terminates the frame early.
var Frames = [NFrames][MaxH]uint32{
	{ // on a quiet moor / raindrops / fall
		FPREP, FADJ, FMASS, SNL,
		FNPL, SNL,
		FINF | FING,
	},
	{
		FPREP, FMASS, SNL,
		FADJ, FNPL, SNL,
		FINF | FING,
	},
	{
		FPREP, FTIMED, SNL,
		FADJ, FNPL, SNL,
		FINF | FING,
	},
	{
		FPREP, FTIMED, SNL,
		SA, FNS, SNL,
		FING,
	},
	{ // morning mist / on a worn field-- / red
		FTIME, FAMB, SNL,
		FPREP, SA, FADJ, FNS, SMD, SNL,
		FADJ | FING,
	},
	{
		FTIME, FAMB, SNL,
		FADJ, FMASS, SNL,
		FING,
	},
	{ // morning mist / remains: / smoke
		FTIME, FMASS, SNL,
		FINF, SS, SCO, SNL,
		FAMB,
	},
	{ // arriving at a parched gate / mist rises-- / a moonlit sandal
		FING, FPREP, SA, FADJ, FNS, SNL,
		FMASS, FING, SMD, SNL,
		SA, FADJ, FNS,
	},
	{ // pausing under a hot tomb / firelight shining-- / a beautiful bon fire
		FING, FPREP, FTIME, FMASS, SNL,
		FMASS, FING, SMD, SNL,
		SA, FADJ, FNS,
	},
	{ // a wife / in afternoon mist-- / sad
		SA, FNS, SNL,
		FPREP, FTIMED, FMASS, SMD, SNL,
		FADJ,
	},
}
