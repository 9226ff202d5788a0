package commands

import (
	"github.com/disgoorg/disgo/discord"
)

var Commands = []discord.ApplicationCommandCreate{
	Profile,
	Daily,
	Catch,
	Collection,
	Favorite,
	Shop,
	Buy,
	Inventory,
	Slots,
	Basket,
	Wheel,
	Give,
	Marry,
	Divorce,
	Friends,
	Top,
	Missions,
	Achievements,
	Titles,
	SetTitle,
	Admin,
	Owner,
}
