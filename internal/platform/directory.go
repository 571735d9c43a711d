package platform

// Default returns the verified directory of Israeli financial institutions.
func Default() *Directory {
	d := NewDirectory()

	// Banks
	d.Add(Platform{"Bank Leumi", "https://www.leumi.co.il", CategoryBank}, "לאומי", "leumi")
	d.Add(Platform{"Bank Hapoalim", "https://www.bankhapoalim.co.il", CategoryBank}, "הפועלים", "hapoalim")
	d.Add(Platform{"Bank Discount", "https://www.discountbank.co.il", CategoryBank}, "דיסקונט", "discount")
	d.Add(Platform{"Mizrahi Tefahot", "https://www.mizrahi-tefahot.co.il", CategoryBank}, "מזרחי", "mizrahi")
	d.Add(Platform{"First International Bank", "https://www.fibi.co.il", CategoryBank}, "בינלאומי", "fibi", "first international")
	d.Add(Platform{"Bank Jerusalem", "https://www.bankjerusalem.co.il", CategoryBank}, "ירושלים", "jerusalem")
	d.Add(Platform{"Bank Massad", "https://www.bankmassad.co.il", CategoryBank}, "מסד", "massad")
	d.Add(Platform{"Bank Yahav", "https://www.bank-yahav.co.il", CategoryBank}, "יהב", "yahav")
	d.Add(Platform{"Bank Otsar Ha-Hayal", "https://www.bankotsar.co.il", CategoryBank}, "אוצר החייל", "otsar")
	d.Add(Platform{"Bank Pagi", "https://www.pagi.co.il", CategoryBank}, "פאגי", "pagi")
	d.Add(Platform{"Mercantile Bank", "https://www.mercantile.co.il", CategoryBank}, "מרכנתיל", "mercantile")

	// Brokers and investment houses
	d.Add(Platform{"Meitav Dash", "https://www.meitavdash.co.il", CategoryBroker}, "מיטב", "meitav")
	d.Add(Platform{"Altshuler Shaham", "https://www.as-invest.co.il", CategoryBroker}, "אלטשולר", "altshuler")
	d.Add(Platform{"Psagot", "https://www.psagot.co.il", CategoryBroker}, "פסגות", "psagot")
	d.Add(Platform{"Excellence", "https://www.xnes.co.il", CategoryBroker}, "אקסלנס", "excellence", "xnes")
	d.Add(Platform{"IG", "https://www.ig.com", CategoryBroker}, "ig")
	d.Add(Platform{"IBI", "https://www.ibi.co.il", CategoryBroker}, "ibi")
	d.Add(Platform{"Leader Capital Markets", "https://www.leadercm.com", CategoryBroker}, "לידר", "leader")
	d.Add(Platform{"More Investments", "https://www.moreinvest.co.il", CategoryBroker}, "מור", "mor", "more")
	d.Add(Platform{"Ayalon Investments", "https://www.ayalon-invest.co.il", CategoryBroker}, "איילון", "ayalon")
	d.Add(Platform{"Interactive Israel", "https://www.interactiveisrael.co.il", CategoryBroker}, "אינטראקטיב", "interactive israel", "interactive")
	d.Add(Platform{"eToro", "https://www.etoro.com", CategoryBroker}, "etoro")

	// Pension and insurance
	d.Add(Platform{"Harel", "https://www.harel-group.co.il", CategoryPension}, "הראל", "harel")
	d.Add(Platform{"Migdal", "https://www.migdal.co.il", CategoryPension}, "מגדל", "migdal")
	d.Add(Platform{"Menora Mivtachim", "https://www.menora.co.il", CategoryPension}, "מנורה", "menora")
	d.Add(Platform{"Clal Insurance", "https://www.clalbit.co.il", CategoryPension}, "כלל", "clal")
	d.Add(Platform{"The Phoenix", "https://www.fnx.co.il", CategoryPension}, "פניקס", "phoenix", "fnx")

	// Regulated crypto
	d.Add(Platform{"Bits of Gold", "https://www.bitsofgold.co.il", CategoryCrypto}, "bits of gold")
	d.Add(Platform{"Bit2C", "https://bit2c.co.il", CategoryCrypto}, "bit2c")
	d.Add(Platform{"Coinmama", "https://www.coinmama.com", CategoryCrypto}, "coinmama")

	// P2P lending
	d.Add(Platform{"Be the Bank", "https://www.btbisrael.co.il", CategoryP2P}, "btb", "be the bank")
	d.Add(Platform{"Blender", "https://www.blender.co.il", CategoryP2P}, "blender")

	// Real estate and crowdfunding
	d.Add(Platform{"Fundit", "https://www.fundit.co.il", CategoryRealEstate}, "fundit")
	d.Add(Platform{"OurCrowd", "https://www.ourcrowd.com", CategoryOther}, "ourcrowd")
	d.Add(Platform{"Pipelbiz", "https://pipelbiz.com", CategoryRealEstate}, "pipelbiz")

	return d
}
