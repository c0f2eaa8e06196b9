package model

// DailyTopics is a fixed syllabus of focus topics that rotates with the day
// of the year, so every host generates the same topic for the same date.
var DailyTopics = []string{
	"Ordering coffee and pastries at a cafe (Kahvilassa)",
	"Grocery shopping: Fruits and Vegetables (Ruokakaupassa)",
	"Asking for directions in the city center (Keskustassa)",
	"Visiting the doctor: Describing symptoms (Lääkärissä)",
	"Booking a hotel room (Hotellivarauksen tekeminen)",
	"Taking the train: Buying tickets (Junassa)",
	"At the library: Borrowing books (Kirjastossa)",
	"Talking about the weather (Säästä puhuminen)",
	"Introducing yourself and your family (Esittely)",
	"Job interview basics (Työhaastattelu)",
	"At the pharmacy: Buying medicine (Apteekissa)",
	"Calling a taxi (Taksin tilaaminen)",
	"Emergency: Calling 112 (Hätäpuhelu)",
	"Describing your hobbies (Harrastukset)",
	"At the post office: Sending a package (Postissa)",
	"Restaurant: Making a reservation (Pöytävaraus)",
	"Shopping for clothes (Vaatekaupassa)",
	"Talking about your day (Päivän tapahtumat)",
	"Holidays in Finland (Suomalaiset juhlapäivät)",
	"Nature and forest vocabulary (Luonto ja metsä)",
	"Renting an apartment (Asunnon vuokraus)",
	"Public transport: Bus and Metro (Julkinen liikenne)",
	"At the gym (Kuntosalilla)",
	"Cooking and recipes (Ruoanlaitto)",
	"Making plans with friends (Tapaamisen sopiminen)",
	"Describing appearance and personality (Ulkonäkö ja luonne)",
	"At the airport (Lentokentällä)",
	"School and education (Koulu ja opiskelu)",
	"Work life vocabulary (Työelämä)",
	"Finnish Sauna culture (Saunakulttuuri)",
}

// FallbackEpisode returns the built-in sample episode shown when nothing is
// cached and daily generation is unavailable. A fresh copy is returned so
// callers can attach an audio handle without mutating shared state.
func FallbackEpisode() Episode {
	return Episode{
		ID:          "ep-fallback",
		Title:       "Welcome to SuomiCast",
		Description: "This is a sample episode used when daily generation is unavailable. It demonstrates the longer format and interactive transcript features.",
		Duration:    "01:30",
		Transcript: []TranscriptSegment{
			{ID: "s1", StartTime: 0, EndTime: 5, Text: "Tervetuloa SuomiCast-sovellukseen."},
			{ID: "s2", StartTime: 5, EndTime: 10, Text: "Tämä on esimerkki, koska päivittäistä uutista ei voitu ladata."},
			{ID: "s3", StartTime: 10, EndTime: 15, Text: "Yleensä saat uuden oppitunnin joka päivä kello kaksitoista."},
			{ID: "s4", StartTime: 15, EndTime: 22, Text: "Suomi on maa Pohjois-Euroopassa, ja sen luonto on erittäin kaunis."},
			{ID: "s5", StartTime: 22, EndTime: 29, Text: "Talvella on usein lunta ja pimeää, mutta kesällä aurinko paistaa pitkään."},
			{ID: "s6", StartTime: 29, EndTime: 36, Text: "Tänään opimme uusia sanoja, jotka liittyvät arkielämään ja harrastuksiin."},
			{ID: "s7", StartTime: 36, EndTime: 42, Text: "Muista kokeilla käännöstoimintoa napsauttamalla tekstiä."},
		},
	}
}
