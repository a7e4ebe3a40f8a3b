package registry

// Well-known public Minecraft status APIs. Names are matched exactly.
const (
	ServerEarthMC   = "EarthMC"
	ServerHypixel   = "Hypixel"
	ServerMojang    = "Mojang"
	ServerMCSrvStat = "MCSrvStat"
	ServerPlayerDB  = "PlayerDB"
)

// RegisterBuiltin loads the built-in catalog of public Minecraft APIs into
// the registry. Entries already registered under the same names are
// overwritten.
func (r *Registry) RegisterBuiltin() {
	r.Register(ServerEarthMC, "https://api.earthmc.net", Options{
		Version: "v3/aurora",
		Endpoints: map[string]string{
			"towns":       "towns",
			"nations":     "nations",
			"players":     "players",
			"quarters":    "quarters",
			"discord":     "discord",
			"server_info": "",
		},
	})

	r.Register(ServerHypixel, "https://api.hypixel.net", Options{
		Version: "v2",
		Endpoints: map[string]string{
			"player":      "player",
			"status":      "status",
			"guild":       "guild",
			"punishments": "punishmentstats",
		},
	})

	r.Register(ServerMojang, "https://api.mojang.com", Options{
		Endpoints: map[string]string{
			"profile": "users/profiles/minecraft",
		},
	})

	r.Register(ServerMCSrvStat, "https://api.mcsrvstat.us", Options{
		Version: "3",
		Endpoints: map[string]string{
			"bedrock": "bedrock",
		},
	})

	r.Register(ServerPlayerDB, "https://playerdb.co", Options{
		Version: "api/player",
		Endpoints: map[string]string{
			"minecraft": "minecraft",
			"xbox":      "xbox",
			"steam":     "steam",
		},
	})
}
