package signs

// Traditional astrological zodiac
const (
	TAAries       = "aries"
	TATaurus      = "taurus"
	TAGemini      = "gemini"
	TACancer      = "cancer"
	TALeo         = "leo"
	TAVirgo       = "virgo"
	TALibra       = "libra"
	TAScorpio     = "scorpio"
	TASagittarius = "sagittarius"
	TACapricorn   = "capricorn"
	TAAquarius    = "aquarius"
	TAPisces      = "pisces"
)

// Japan Zen
const (
	JZTurtle  = "turtle"
	JZCherry  = "cherry"
	JZSun     = "sun"
	JZBamboo  = "bamboo"
	JZBuffalo = "buffalo"
	JZLotus   = "lotus"
	JZBridge  = "bridge"
	JZPebble  = "pebble"
	JZCaesar  = "caesar"
	JZEmpress = "empress"
	JZMoon    = "moon"
)

// Native American
const (
	NAFalcon     = "falcon"
	NABeaver     = "beaver"
	NADeer       = "deer"
	NAWoodpecker = "woodpecker"
	NASalmon     = "salmon"
	NABear       = "bear"
	NARaven      = "raven"
	NASnake      = "snake"
	NAOwl        = "owl"
	NAGoose      = "goose"
	NAOtter      = "otter"
	NAWolf       = "wolf"
)

// Egyptian
const (
	ENile    = "nile"
	EAmunRa  = "amun_ra"
	EMut     = "mut"
	EGeb     = "geb"
	EOsiris  = "osiris"
	EIsis    = "isis"
	EThoth   = "thoth"
	EHorus   = "horus"
	EAnubis  = "anubis"
	ESeth    = "seth"
	EBastet  = "bastet"
	ESekhmet = "sekhmet"
)

// Celtic tree signs
const (
	CRowan    = "rowan"
	CAsh      = "ash"
	CAlder    = "alder"
	CWillow   = "willow"
	CHawthorn = "hawthorn"
	COak      = "oak"
	CHolly    = "holly"
	CHazel    = "hazel"
	CVine     = "vine"
	CIvy      = "ivy"
	CReed     = "reed"
	CElder    = "elder"
	CBirch    = "birch"
)

// System identifiers exposed to the host
const (
	IDTraditional    = "traditional_astrological_zodiac"
	IDJapanZen       = "japan_zen_signs"
	IDNativeAmerican = "native_american_signs"
	IDEgyptian       = "egyptian_signs"
	IDCeltic         = "celtic_signs"
)
