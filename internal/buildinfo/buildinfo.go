package buildinfo

const Graffiti = " _  ______  ___           _            \n| |/ /  _ \\|_ _|_ __   __| | _____  __ \n| ' /| | | || || '_ \\ / _` |/ _ \\ \\/ /\n| . \\| |_| || || | | | (_| |  __/>  < \n|_|\\_\\____/|___|_| |_|\\__,_|\\___/_/\\_\\\n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "kdindex"
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
