package buildinfo

const Graffiti = "     _       _                        _ \n" +
	"  __| | ___ | |_ __ _ _   _  __ _  __| |\n" +
	" / _` |/ _ \\| __/ _` | | | |/ _` |/ _` |\n" +
	"| (_| | (_) | || (_| | |_| | (_| | (_| |\n" +
	" \\__,_|\\___/ \\__\\__, |\\__,_|\\__,_|\\__,_|\n" +
	"                   |_|                  \n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "dotquad"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
