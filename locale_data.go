package codforge

// commonLabels is the shared English base every locale record overlays.
// Locales that never localized the simulated card-payment flow keep
// these strings, which matches how the pages have always rendered.
func commonLabels() UILabels {
	return UILabels{
		CardErrorTitle:       "Attention",
		CardErrorMsg:         "We cannot accept card payments at the moment. Choose how to proceed:",
		SwitchToCOD:          "Pay comfortably on delivery",
		MostPopular:          "Most Chosen",
		GiveUpOffer:          "Give up offer and discount",
		ConfirmCOD:           "Confirm Cash on Delivery",
		Card:                 "Credit Card",
		ThankYouTitle:        "Thank you {name}!",
		ThankYouMsg:          "Your order has been received. We will call you shortly at {phone} to confirm shipment.",
		BackToShop:           "Back to Shopping",
		SocialProof:          "and 758 people purchased",
		GadgetLabel:          "Add 2 Exclusive Gadgets",
		InsuranceDescription: "Package protected against theft and loss.",
		GadgetDescription:    "Add to your order.",
		FreeLabel:            "Free",
	}
}

const disclaimerItaliano = "Il nostro sito web agisce esclusivamente come affiliato e si concentra sulla promozione dei prodotti tramite campagne pubblicitarie. Non ci assumiamo alcuna responsabilità per la spedizione, la qualità o qualsiasi altra questione riguardante i prodotti venduti tramite link di affiliazione. Ti preghiamo di notare che le immagini utilizzate a scopo illustrativo potrebbero non corrispondere alla reale immagine del prodotto acquistato. Ti invitiamo a contattare il servizio assistenza clienti dopo aver inserito i dati nel modulo per chiedere qualsiasi domanda o informazione sul prodotto prima di confermare l’ordine. Ti informiamo inoltre che i prodotti in omaggio proposti sul sito possono essere soggetti a disponibilità limitata, senza alcuna garanzia di disponibilità da parte del venditore che spedisce il prodotto. Ricorda che, qualora sorgessero problemi relativi alle spedizioni o alla qualità dei prodotti, la responsabilità ricade direttamente sull’azienda fornitrice."

const disclaimerInglese = "Our website acts exclusively as an affiliate and focuses on promoting products through advertising campaigns. We assume no responsibility for shipping, quality, or any other issue regarding products sold through affiliate links. Please note that images used for illustrative purposes may not correspond to the actual product image purchased. We invite you to contact customer service after entering your data in the form to ask any questions or information about the product before confirming the order. We also inform you that free products offered on the site may be subject to limited availability, without any guarantee of availability from the seller shipping the product. Remember that should problems arise regarding shipments or product quality, the responsibility lies directly with the supplying company."

const disclaimerFrancese = "Notre site Web agit exclusivement en tant qu'affilié et se concentre sur la promotion de produits via des campagnes publicitaires. Nous n'assumons aucune responsabilité quant à l'expédition, la qualité ou toute autre question concernant les produits vendus via des liens d'affiliation. Veuillez noter que les images utilisées à des fins d'illustration peuvent ne pas correspondre à l'image réelle du produit acheté. Nous vous invitons à contacter le service client après avoir saisi vos données dans le formulaire pour poser toute question ou information sur le produit avant de confirmer la commande. Nous vous informons également que les produits gratuits proposés sur le site peuvent être soumis à une disponibilité limitée, sans aucune garantie de disponibilité de la part du vendeur expédiant le produit. N'oubliez pas qu'en cas de problèmes concernant les expéditions ou la qualité des produits, la responsabilité incombe directement à l'entreprise fournisseuse."

const disclaimerTedesco = "Unsere Website fungiert ausschließlich als Partner und konzentriert sich auf die Bewerbung von Produkten durch Werbekampagnen. Wir übernehmen keine Verantwortung für Versand, Qualität oder andere Fragen bezüglich der über Partnerlinks verkauften Produkte. Bitte beachten Sie, dass die zu Illustrationszwecken verwendeten Bilder möglicherweise nicht dem tatsächlichen Bild des gekauften Produkts entsprechen. Wir laden Sie ein, den Kundendienst zu kontaktieren, nachdem Sie Ihre Daten in das Formular eingegeben haben, um Fragen oder Informationen zum Produkt zu stellen, bevor Sie die Bestellung bestätigen. Wir informieren Sie auch darüber, dass die auf der Website angebotenen kostenlosen Produkte einer begrenzten Verfügbarkeit unterliegen können, ohne dass der Verkäufer, der das Produkt versendet, eine Verfügbarkeitsgarantie übernimmt. Denken Sie daran, dass bei Problemen mit Sendungen oder der Produktqualität die Verantwortung direkt beim liefernden Unternehmen liegt."

const disclaimerSpagnolo = "Nuestro sitio web actúa exclusivamente como afiliado y se centra en la promoción de productos a través de campañas publicitarias. No asumimos ninguna responsabilidad por el envío, la calidad o cualquier otra cuestión relacionada con los productos vendidos a través de enlaces de afiliados. Tenga en cuenta que las imágenes utilizadas con fines ilustrativos pueden no corresponder a la imagen real del producto comprado. Le invitamos a ponerse en contacto con el servicio de atención al cliente después de introducir sus datos en el formulario para realizar cualquier pregunta o información sobre el producto antes de confirmar el pedido. También le informamos que los productos gratuitos ofrecidos en el sitio pueden estar sujetos a disponibilidad limitada, sin ninguna garantía de disponibilidad por parte del vendedor que envía el producto. Recuerde que si surgen problemas relacionados con los envíos o la calidad de los productos, la responsabilidad recae directamente en la empresa proveedora."

const disclaimerPortoghese = "O nosso site atua exclusivamente como afiliado e concentra-se na promoção de produtos através de campanhas publicitárias. Não assumimos qualquer responsabilidade pelo envio, qualidade ou qualquer outra questão relativa aos produtos vendidos através de links de afiliados. Tenha em atenção que as imagens utilizadas para fins ilustrativos podem não corresponder à imagem real do produto adquirido. Convidamo-lo a contactar o serviço de apoio ao cliente após introduzir os seus dados no formulário para fazer qualquer pergunta ou obter informações sobre o produto antes de confirmar a encomenda. Informamos também que os produtos gratuitos oferecidos no site podem estar sujeitos a disponibilidade limitada, sem qualquer garantia de disponibilidade por parte do vendedor que envia o produto. Lembre-se que, caso surjam problemas relacionados com envios ou qualidade dos produtos, a responsabilidade recai diretamente sobre a empresa fornecedora."

const disclaimerOlandese = "Onze website fungeert uitsluitend als partner en richt zich op het promoten van producten via reclamecampagnes. Wij aanvaarden geen verantwoordelijkheid voor verzending, kwaliteit of enige andere kwestie met betrekking tot producten die via partnerlinks worden verkocht. Houd er rekening mee dat afbeeldingen die voor illustratieve doeleinden worden gebruikt, mogelijk niet overeenkomen met de daadwerkelijke afbeelding van het gekochte product. Wij nodigen u uit om contact op te nemen met de klantenservice nadat u uw gegevens in het formulier hebt ingevoerd om vragen te stellen of informatie over het product te vragen voordat u de bestelling bevestigt. Wij informeren u ook dat gratis producten die op de site worden aangeboden, onderhevig kunnen zijn aan beperkte beschikbaarheid, zonder enige garantie van beschikbaarheid van de verkoper die het product verzendt. Vergeet niet dat als er problemen ontstaan met betrekking tot zendingen of productkwaliteit, de verantwoordelijkheid rechtstreeks bij het leverende bedrijf ligt."

const disclaimerPolacco = "Nasza strona internetowa działa wyłącznie jako partner i koncentruje się na promowaniu produktów poprzez kampanie reklamowe. Nie ponosimy żadnej odpowiedzialności za wysyłkę, jakość ani żadne inne kwestie dotyczące produktów sprzedawanych za pośrednictwem linków partnerskich. Należy pamiętać, że zdjęcia użyte w celach ilustracyjnych mogą nie odpowiadać rzeczywistemu wizerunkowi zakupionego produktu. Zapraszamy do kontaktu z obsługą klienta po wprowadzeniu danych w formularzu w celu zadania pytań lub uzyskania informacji o produkcie przed potwierdzeniem zamówienia. Informujemy również, że bezpłatne produkty oferowane na stronie mogą być objęte ograniczoną dostępnością, bez żadnej gwarancji dostępności ze strony sprzedawcy wysyłającego produkt. Pamiętaj, że w przypadku problemów związanych z przesyłkami lub jakością produktów odpowiedzialność spoczywa bezpośrednio na firmie dostarczającej."

const disclaimerRumeno = "Site-ul nostru acționează exclusiv ca afiliat și se concentrează pe promovarea produselor prin campanii publicitare. Nu ne asumăm nicio responsabilitate pentru transport, calitate sau orice altă problemă privind produsele vândute prin link-uri de afiliere. Vă rugăm să rețineți că imaginile utilizate în scop ilustrativ pot să nu corespundă cu imaginea reală a produsului achiziționat. Vă invităm să contactați serviciul de asistență clienți după introducerea datelor în formular pentru a pune orice întrebare sau informație despre produs înainte de a confirma comanda. Vă informăm, de asemenea, că produsele gratuite oferite pe site pot fi supuse unei disponibilități limitate, fără nicio garanție de disponibilitate din partea vânzătorului care expediază produsul. Rețineți că, în cazul în care apar probleme legate de expedieri sau de calitatea produselor, responsabilitatea revine direct companiei furnizoare."

const disclaimerSvedese = "Vår webbplats fungerar uteslutande som en affiliate och fokuserar på att marknadsföra produkter genom reklamkampanjer. Vi tar inget ansvar för frakt, kvalitet eller någon annan fråga gällande produkter som säljs via affiliatelänkar. Observera att bilder som används i illustrativt syfte kanske inte motsvarar den faktiska bilden av den köpta produkten. Vi inbjuder dig att kontakta kundtjänst efter att ha angett dina uppgifter i formuläret för att ställa frågor eller få information om produkten innan du bekräftar beställningen. Vi informerar dig också om att gratisprodukter som erbjuds på webbplatsen kan vara föremål för begränsad tillgänglighet, utan någon garanti för tillgänglighet från säljaren som skickar produkten. Kom ihåg att om problem uppstår gällande leveranser eller produktkvalitet ligger ansvaret direkt på det levererande företaget."

const disclaimerBulgaro = "Нашият уебсайт действа изключително като партньор и се фокусира върху популяризирането на продукти чрез рекламни кампании. Не поемаме отговорност за доставка, качество или какъвто и да е друг въпрос относно продукти, продавани чрез партньорски връзки. Моля, имайте предвид, че изображенията, използвани с илюстративна цел, може да не съответстват на действителното изображение на закупения продукт. Каним ви да се свържете с обслужването на клиенти, след като въведете данните си във формуляра, за да зададете всякакви въпроси или информация за продукта, преди да потвърдите поръчката. Също така ви информираме, че безплатните продукти, предлагани на сайта, може да са с ограничена наличност, без никаква гаранция за наличност от продавача, изпращащ продукта. Не забравяйте, че ако възникнат проблеми, свързани с пратките или качеството на продуктите, отговорността е директно на фирмата доставчик."

const disclaimerGreco = "Ο ιστότοπός μας λειτουργεί αποκλειστικά ως συνεργάτης και επικεντρώνεται στην προώθηση προϊόντων μέσω διαφημιστικών εκστρατειών. Δεν αναλαμβάνουμε καμία ευθύνη για την αποστολή, την ποιότητα ή οποιοδήποτε άλλο ζήτημα σχετικά με προϊόντα που πωλούνται μέσω συνδέσμων συνεργατών. Λάβετε υπόψη ότι οι εικόνες που χρησιμοποιούνται για επεξηγηματικούς σκοπούς ενδέχεται να μην αντιστοιχούν στην πραγματική εικόνα του προϊόντος που αγοράσατε. Σας προσκαλούμε να επικοινωνήσετε με την εξυπηρέτηση πελατών αφού εισαγάγετε τα στοιχεία σας στη φόρμα για να κάνετε οποιεσδήποτε ερωτήσεις ή πληροφορίες σχετικά με το προϊόν πριν επιβεβαιώσετε την παραγγελία. Σας ενημερώνουμε επίσης ότι τα δωρεάν προϊόντα που προσφέρονται στον ιστότοπο ενδέχεται να υπόκεινται σε περιορισμένη διαθεσιμότητα, χωρίς καμία εγγύηση διαθεσιμότητας από τον πωλητή που αποστέλλει το προϊόν. Να θυμάστε ότι εάν προκύψουν προβλήματα σχετικά με τις αποστολές ή την ποιότητα των προϊόντων, η ευθύνη βαρύνει άμεσα την προμηθεύτρια εταιρεία."

const disclaimerUngherese = "Weboldalunk kizárólag partnerként működik, és a termékek reklámkampányokon keresztül történő népszerűsítésére összpontosít. Nem vállalunk felelősséget a szállításért, a minőségért vagy a partnerlinkeken keresztül értékesített termékekkel kapcsolatos bármely más kérdésért. Felhívjuk figyelmét, hogy az illusztrációs célokra használt képek nem feltétlenül felelnek meg a megvásárolt termék tényleges képének. Kérjük, vegye fel a kapcsolatot az ügyfélszolgálattal, miután megadta adatait az űrlapon, hogy bármilyen kérdést vagy információt feltegyen a termékkel kapcsolatban a megrendelés megerősítése előtt. Tájékoztatjuk továbbá, hogy az oldalon kínált ingyenes termékek korlátozottan állhatnak rendelkezésre, a terméket szállító eladó rendelkezésre állási garanciája nélkül. Ne feledje, hogy amennyiben a szállítással vagy a termékminőséggel kapcsolatban problémák merülnek fel, a felelősség közvetlenül a szállító céget terheli."

const disclaimerCroato = "Naša web stranica djeluje isključivo kao partner i usredotočena je na promociju proizvoda putem reklamnih kampanja. Ne preuzimamo nikakvu odgovornost za otpremu, kvalitetu ili bilo koje drugo pitanje u vezi s proizvodima koji se prodaju putem partnerskih veza. Imajte na umu da slike koje se koriste u ilustrativne svrhe možda ne odgovaraju stvarnoj slici kupljenog proizvoda. Pozivamo vas da kontaktirate korisničku podršku nakon unosa podataka u obrazac kako biste postavili bilo kakva pitanja ili informacije o proizvodu prije potvrde narudžbe. Također vas obavještavamo da besplatni proizvodi ponuđeni na web mjestu mogu biti podložni ograničenoj dostupnosti, bez ikakvog jamstva dostupnosti od strane prodavatelja koji šalje proizvod. Imajte na umu da ako se pojave problemi u vezi s pošiljkama ili kvalitetom proizvoda, odgovornost leži izravno na tvrtki dobavljaču."

const disclaimerSerbo = "Naša veb stranica deluje isključivo kao partner i fokusira se na promociju proizvoda putem reklamnih kampanja. Ne preuzimamo nikakvu odgovornost za otpremu, kvalitet ili bilo koje drugo pitanje u vezi sa proizvodima koji se prodaju putem partnerskih veza. Imajte na umu da slike koje se koriste u ilustrativne svrhe možda ne odgovaraju stvarnoj slici kupljenog proizvoda. Pozivamo vas da kontaktirate korisničku podršku nakon unosa podataka u obrazac kako biste postavili bilo kakva pitanja ili informacije o proizvodu pre potvrde porudžbine. Takođe vas obaveštavamo da besplatni proizvodi ponuđeni na sajtu mogu biti podložni ograničenoj dostupnosti, bez ikakve garancije dostupnosti od strane prodavca koji šalje proizvod. Imajte na umu da ako se pojave problemi u vezi sa pošiljkama ili kvalitetom proizvoda, odgovornost leži direktno na kompaniji dobavljaču."

const disclaimerSlovacco = "Naša webová stránka funguje výlučne ako pridružený partner a zameriava sa na propagáciu produktov prostredníctvom reklamných kampaní. Nenesieme žiadnu zodpovednosť za dopravu, kvalitu ani žiadne iné záležitosti týkajúce sa produktov predávaných prostredníctvom pridružených odkazov. Upozorňujeme, že obrázky použité na ilustračné účely nemusia zodpovedať skutočnému obrázku zakúpeného produktu. Odporúčame vám kontaktovať zákaznícky servis po zadaní údajov do formulára a položiť akékoľvek otázky alebo informácie o produkte pred potvrdením objednávky. Taktiež vás informujeme, že bezplatné produkty ponúkané na stránke môžu podliehať obmedzenej dostupnosti, bez akejkoľvek záruky dostupnosti zo strany predajcu, ktorý produkt odosiela. Pamätajte, že v prípade problémov s dopravou alebo kvalitou produktov zodpovednosť nesie priamo dodávateľská spoločnosť."

var locales = map[string]LocaleConfig{
	"Italiano": {
		Name: "Italiano", Currency: "€", LocaleTag: "it-IT", DateLayout: "02/01/2006",
		CountryContext: "Italy", VerifiedRole: "Acquisto Verificato",
		Announcement:   "SPEDIZIONE GRATUITA + PAGAMENTO ALLA CONSEGNA",
		CTASubtext:     "Garanzia Soddisfatti o Rimborsati",
		ThankYouSuffix: "-grazie", BadgeName: "Martina",
		FormLabels: map[FormFieldID]string{
			FieldName: "Nome e Cognome", FieldPhone: "Telefono", FieldAddress: "Indirizzo e Civico",
			FieldCity: "Città", FieldPostal: "CAP", FieldEmail: "Email", FieldNotes: "Note per il corriere",
		},
		Names:  []string{"Alice", "Marco", "Giulia", "Luca", "Sofia", "Alessandro", "Francesca", "Matteo", "Chiara", "Lorenzo"},
		Cities: []string{"Milano", "Roma", "Napoli", "Torino", "Palermo", "Genova", "Bologna", "Firenze", "Bari", "Catania"},
		Action: "ha appena acquistato", FromWord: "da",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "Assicurazione Spedizione VIP", GadgetLabel: "Aggiungi 2 Gadget Esclusivi",
			SocialProof:          "e altre 758 persone hanno acquistato",
			InsuranceDescription: "Pacco protetto da furto e smarrimento.", GadgetDescription: "Aggiungi al tuo ordine.",
			FreeLabel: "Gratis", Reviews: "Recensioni", Offer: "Offerta", OnlyLeft: "Solo {x} rimasti",
			Secure: "Sicuro", Returns: "Resi", Original: "Originale", Express: "Espresso", Warranty: "Garanzia",
			CheckoutHeader: "Cassa", PaymentMethod: "Metodo di Pagamento", COD: "Pagamento alla Consegna",
			ShippingInfo: "Dati Spedizione", CompleteOrder: "Completa Ordine",
			OrderReceived: "OK!", OrderReceivedMsg: "Ordine Ricevuto.", TechDesign: "Tecnologia & Design",
			DiscountLabel: "-50%", Certified: "Verificato", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerItaliano, PrivacyPolicy: "Privacy Policy",
			TermsConditions: "Termini e Condizioni", CookiePolicy: "Cookie Policy",
			RightsReserved: "Tutti i diritti riservati.",
			GeneratedNote:  "Questa è una pagina generata automaticamente a scopo illustrativo.",
			ThankYouTitle:  "Grazie {name}!",
			ThankYouMsg:    "Il tuo ordine è stato ricevuto. Un nostro operatore ti contatterà a breve al numero {phone} per confermare l'ordine.",
			BackToShop:     "Torna allo Shopping",
			SummaryProduct: "Prodotto:", SummaryShipping: "Spedizione:", SummaryInsurance: "Assicurazione:",
			SummaryGadget: "Gadget:", SummaryTotal: "Totale:",
		}),
	},
	"Inglese": {
		Name: "Inglese", Currency: "€", LocaleTag: "en-IE", DateLayout: "02/01/2006",
		CountryContext: "Ireland or United Kingdom", VerifiedRole: "Verified Purchase",
		Announcement:   "FREE SHIPPING + CASH ON DELIVERY",
		CTASubtext:     "Money Back Guarantee",
		ThankYouSuffix: "-thanks", BadgeName: "Michelle",
		FormLabels: map[FormFieldID]string{
			FieldName: "Full Name", FieldPhone: "Phone Number", FieldAddress: "Street Address",
			FieldCity: "City", FieldPostal: "Zip Code", FieldEmail: "Email", FieldNotes: "Delivery Notes",
		},
		Names:  []string{"Emily", "James", "Sarah", "Michael", "Jessica", "David", "Emma", "Robert", "Olivia", "John"},
		Cities: []string{"London", "Manchester", "Dublin", "Liverpool", "Bristol", "Glasgow", "Birmingham", "Leeds"},
		Action: "just purchased", FromWord: "from",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "VIP Shipping Insurance", SocialProof: "and 758 people purchased",
			Reviews: "Reviews", Offer: "Offer", OnlyLeft: "Only {x} left",
			Secure: "Secure", Returns: "Returns", Original: "Original", Express: "Express", Warranty: "Warranty",
			CheckoutHeader: "Checkout", PaymentMethod: "Payment Method", COD: "Cash On Delivery",
			ShippingInfo: "Shipping Info", CompleteOrder: "Complete Order",
			OrderReceived: "OK!", OrderReceivedMsg: "Order Received.", TechDesign: "Technology & Design",
			DiscountLabel: "-50%", Certified: "Verified", CurrencyPos: CurrencyBefore,
			LegalDisclaimer: disclaimerInglese, PrivacyPolicy: "Privacy Policy",
			TermsConditions: "Terms & Conditions", CookiePolicy: "Cookie Policy",
			RightsReserved: "All rights reserved.",
			GeneratedNote:  "This is an automatically generated page for illustrative purposes.",
			SummaryProduct: "Product:", SummaryShipping: "Shipping:", SummaryInsurance: "Insurance:",
			SummaryGadget: "Gadget:", SummaryTotal: "Total:",
		}),
	},
	"Francese": {
		Name: "Francese", Currency: "€", LocaleTag: "fr-FR", DateLayout: "02/01/2006",
		CountryContext: "France", VerifiedRole: "Achat Vérifié",
		Announcement:   "LIVRAISON GRATUITE + PAIEMENT À LA LIVRAISON",
		CTASubtext:     "Satisfait ou Remboursé",
		ThankYouSuffix: "-merci", BadgeName: "Sophie",
		FormLabels: map[FormFieldID]string{
			FieldName: "Nom et Prénom", FieldPhone: "Téléphone", FieldAddress: "Adresse",
			FieldCity: "Ville", FieldPostal: "Code Postal", FieldEmail: "Email", FieldNotes: "Notes de livraison",
		},
		Names:  []string{"Marie", "Thomas", "Camille", "Nicolas", "Sophie", "Julien", "Lea", "Pierre", "Chloe", "Lucas"},
		Cities: []string{"Paris", "Lyon", "Marseille", "Toulouse", "Nice", "Nantes", "Strasbourg", "Montpellier", "Bordeaux"},
		Action: "vient d'acheter", FromWord: "de",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "Assurance Expédition VIP", GadgetLabel: "Ajouter 2 Gadgets Exclusifs",
			SocialProof:    "et 758 personnes ont acheté",
			CardErrorTitle: "Attention",
			CardErrorMsg:   "Nous ne pouvons pas accepter les paiements par carte pour le moment. Choisissez comment procéder :",
			SwitchToCOD:    "Payez confortablement à la livraison", MostPopular: "Méthode la plus choisie",
			GiveUpOffer: "Renoncer à l'offre et à la réduction", ConfirmCOD: "Confirmer Paiement à la Livraison",
			Card:                 "Carte de Crédit",
			InsuranceDescription: "Colis protégé contre le vol et la perte.", GadgetDescription: "Ajouter à votre commande.",
			FreeLabel: "Gratuit", Reviews: "Avis", Offer: "Offre", OnlyLeft: "Plus que {x} restants",
			Secure: "Sécurisé", Returns: "Retours", Original: "Original", Express: "Express", Warranty: "Garantie",
			CheckoutHeader: "Caisse", PaymentMethod: "Moyen de Paiement", COD: "Paiement à la Livraison",
			ShippingInfo: "Infos de Livraison", CompleteOrder: "Commander",
			OrderReceived: "OK!", OrderReceivedMsg: "Commande Reçue.", TechDesign: "Technologie et Design",
			DiscountLabel: "-50%", Certified: "Vérifié", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerFrancese, PrivacyPolicy: "Politique de Confidentialité",
			TermsConditions: "Termes et Conditions", CookiePolicy: "Politique de Cookies",
			RightsReserved: "Tous droits réservés.",
			GeneratedNote:  "Ceci est une page générée automatiquement à des fins d'illustration.",
			ThankYouTitle:  "Merci {name} !",
			ThankYouMsg:    "Votre commande a été reçue. Nous vous appellerons sous peu au {phone} pour confirmer l'expédition.",
			BackToShop:     "Retour à la boutique",
			SummaryProduct: "Produit:", SummaryShipping: "Livraison:", SummaryInsurance: "Assurance:",
			SummaryGadget: "Gadget:", SummaryTotal: "Total:",
		}),
	},
	"Tedesco": {
		Name: "Tedesco", Currency: "€", LocaleTag: "de-DE", DateLayout: "02.01.2006",
		CountryContext: "Germany", VerifiedRole: "Verifizierter Kauf",
		Announcement:   "KOSTENLOSER VERSAND + NACHNAHME",
		CTASubtext:     "Geld-zurück-Garantie",
		ThankYouSuffix: "-danke", BadgeName: "Hannah",
		FormLabels: germanFormLabels(),
		Names:      []string{"Anna", "Lukas", "Laura", "Maximilian", "Julia", "Paul", "Sarah", "Felix", "Mia", "Leon"},
		Cities:     []string{"Berlin", "Munich", "Hamburg", "Cologne", "Frankfurt", "Stuttgart", "Düsseldorf", "Leipzig"},
		Action:     "hat gerade gekauft", FromWord: "aus",
		Labels: germanLabels(),
	},
	"Austriaco": {
		Name: "Austriaco", Currency: "€", LocaleTag: "de-AT", DateLayout: "02.01.2006",
		CountryContext: "Austria", VerifiedRole: "Verifizierter Kauf",
		Announcement:   "KOSTENLOSER VERSAND + NACHNAHME",
		CTASubtext:     "Geld-zurück-Garantie",
		ThankYouSuffix: "-danke", BadgeName: "Greta",
		FormLabels: germanFormLabels(),
		Names:      []string{"Katharina", "Lukas", "Anna", "Tobias", "Lisa", "Florian", "Julia", "Markus"},
		Cities:     []string{"Vienna", "Graz", "Linz", "Salzburg", "Innsbruck", "Klagenfurt"},
		Action:     "hat gerade gekauft", FromWord: "aus",
		Labels: germanLabels(),
	},
	"Spagnolo": {
		Name: "Spagnolo", Currency: "€", LocaleTag: "es-ES", DateLayout: "2/1/2006",
		CountryContext: "Spain", VerifiedRole: "Compra Verificada",
		Announcement:   "ENVÍO GRATIS + PAGO CONTRA REEMBOLSO",
		CTASubtext:     "Garantía de Devolución",
		ThankYouSuffix: "-gracias", BadgeName: "Lucía",
		FormLabels: map[FormFieldID]string{
			FieldName: "Nombre y Apellidos", FieldPhone: "Teléfono", FieldAddress: "Dirección",
			FieldCity: "Ciudad", FieldPostal: "Código Postal", FieldEmail: "Email", FieldNotes: "Notas de entrega",
		},
		Names:  []string{"Lucía", "Hugo", "Sofía", "Martín", "María", "Leo", "Paula", "Daniel", "Valeria", "Alejandro"},
		Cities: []string{"Madrid", "Barcelona", "Valencia", "Sevilla", "Zaragoza", "Málaga", "Murcia", "Palma"},
		Action: "acaba de comprar", FromWord: "de",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "Seguro de Envío VIP", GadgetLabel: "Añadir 2 Gadgets Exclusivos",
			SocialProof:    "y 758 personas compraron",
			CardErrorTitle: "Atención",
			CardErrorMsg:   "No podemos aceptar pagos con tarjeta en este momento. Elija cómo proceder:",
			SwitchToCOD:    "Paga cómodamente contra reembolso", MostPopular: "Método más elegido",
			GiveUpOffer: "Renunciar a la oferta y al descuento", ConfirmCOD: "Confirmar Contra Reembolso",
			Card:                 "Tarjeta de Crédito",
			InsuranceDescription: "Paquete protegido contra robo y pérdida.", GadgetDescription: "Añadir a su pedido.",
			FreeLabel: "Gratis", Reviews: "Reseñas", Offer: "Oferta", OnlyLeft: "Solo quedan {x}",
			Secure: "Seguro", Returns: "Devoluciones", Original: "Original", Express: "Express", Warranty: "Garantía",
			CheckoutHeader: "Caja", PaymentMethod: "Método de Pago", COD: "Contra Reembolso",
			ShippingInfo: "Datos de Envío", CompleteOrder: "Completar Pedido",
			OrderReceived: "¡OK!", OrderReceivedMsg: "Pedido Recibido.", TechDesign: "Tecnología y Diseño",
			DiscountLabel: "-50%", Certified: "Verificado", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerSpagnolo, PrivacyPolicy: "Política de Privacidad",
			TermsConditions: "Términos y Condiciones", CookiePolicy: "Política de Cookies",
			RightsReserved: "Todos los derechos reservados.",
			GeneratedNote:  "Esta es una página generada automáticamente con fines ilustrativos.",
			ThankYouTitle:  "¡Gracias {name}!",
			ThankYouMsg:    "Su pedido ha sido recibido. Le llamaremos brevemente al {phone} para confirmar el envío.",
			BackToShop:     "Volver a la tienda",
			SummaryProduct: "Producto:", SummaryShipping: "Envío:", SummaryInsurance: "Seguro:",
			SummaryGadget: "Gadget:", SummaryTotal: "Total:",
		}),
	},
	"Portoghese": {
		Name: "Portoghese", Currency: "€", LocaleTag: "pt-PT", DateLayout: "02/01/2006",
		CountryContext: "Portugal", VerifiedRole: "Compra Verificada",
		Announcement:   "ENVIO GRÁTIS + PAGAMENTO NA ENTREGA",
		CTASubtext:     "Garantia de Reembolso",
		ThankYouSuffix: "-obrigado", BadgeName: "Maria",
		FormLabels: map[FormFieldID]string{
			FieldName: "Nome Completo", FieldPhone: "Telefone", FieldAddress: "Morada",
			FieldCity: "Cidade", FieldPostal: "Código Postal", FieldEmail: "Email", FieldNotes: "Notas de entrega",
		},
		Names:  []string{"Maria", "João", "Ana", "Francisco", "Leonor", "Santiago", "Matilde", "Rodrigo", "Beatriz", "Tomás"},
		Cities: []string{"Lisboa", "Porto", "Braga", "Coimbra", "Faro", "Funchal", "Vila Nova de Gaia"},
		Action: "acabou de comprar", FromWord: "de",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "Seguro de Envio VIP", GadgetLabel: "Adicionar 2 Gadgets Exclusivos",
			SocialProof:    "e 758 pessoas compraram",
			CardErrorTitle: "Atenção",
			CardErrorMsg:   "Não podemos aceitar pagamentos com cartão no momento. Escolha como proceder:",
			SwitchToCOD:    "Pague confortavelmente na entrega", MostPopular: "Método mais escolhido",
			GiveUpOffer: "Desistir da oferta e do desconto", ConfirmCOD: "Confirmar Pagamento na Entrega",
			Card:                 "Cartão de Crédito",
			InsuranceDescription: "Pacote protegido contra roubo e perda.", GadgetDescription: "Adicionar ao seu pedido.",
			FreeLabel: "Grátis", Reviews: "Avaliações", Offer: "Oferta", OnlyLeft: "Apenas {x} restantes",
			Secure: "Seguro", Returns: "Devoluções", Original: "Original", Express: "Expresso", Warranty: "Garantia",
			CheckoutHeader: "Checkout", PaymentMethod: "Método de Pagamento", COD: "Pagamento na Entrega",
			ShippingInfo: "Informações de Envio", CompleteOrder: "Completar Pedido",
			OrderReceived: "OK!", OrderReceivedMsg: "Pedido Recebido.", TechDesign: "Tecnologia e Design",
			DiscountLabel: "-50%", Certified: "Verificado", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerPortoghese, PrivacyPolicy: "Política de Privacidade",
			TermsConditions: "Termos e Condições", CookiePolicy: "Política de Cookies",
			RightsReserved: "Todos os direitos reservados.",
			GeneratedNote:  "Esta é uma página gerada automaticamente para fins ilustrativos.",
			ThankYouTitle:  "Obrigado {name}!",
			ThankYouMsg:    "A sua encomenda foi recebida. Vamos ligar-lhe em breve para o {phone} para confirmar o envio.",
			BackToShop:     "Voltar à Loja",
			SummaryProduct: "Produto:", SummaryShipping: "Envio:", SummaryInsurance: "Seguro:",
			SummaryGadget: "Gadget:", SummaryTotal: "Total:",
		}),
	},
	"Olandese": {
		Name: "Olandese", Currency: "€", LocaleTag: "nl-NL", DateLayout: "02-01-2006",
		CountryContext: "Netherlands", VerifiedRole: "Geverifieerde Aankoop",
		Announcement:   "GRATIS VERZENDING + BETALEN BIJ LEVERING",
		CTASubtext:     "Niet goed, geld terug",
		ThankYouSuffix: "-bedankt", BadgeName: "Emma",
		FormLabels: map[FormFieldID]string{
			FieldName: "Volledige Naam", FieldPhone: "Telefoon", FieldAddress: "Adres",
			FieldCity: "Stad", FieldPostal: "Postcode", FieldEmail: "E-mail", FieldNotes: "Leveringsnotities",
		},
		Names:  []string{"Emma", "Daan", "Sophie", "Lucas", "Julia", "Levi", "Mila", "Sem", "Tess", "Finn"},
		Cities: []string{"Amsterdam", "Rotterdam", "The Hague", "Utrecht", "Eindhoven", "Tilburg", "Groningen"},
		Action: "heeft zojuist gekocht", FromWord: "uit",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "VIP Verzendverzekering", GadgetLabel: "Voeg 2 Exclusieve Gadgets toe",
			SocialProof:    "en 758 mensen kochten",
			CardErrorTitle: "Let op",
			CardErrorMsg:   "We kunnen momenteel geen kaartbetalingen accepteren. Kies hoe u verder wilt gaan:",
			SwitchToCOD:    "Betaal comfortabel bij levering", MostPopular: "Meest gekozen methode",
			GiveUpOffer: "Afzien van aanbod en korting", ConfirmCOD: "Bevestig Betaling bij Levering",
			Card:                 "Creditcard",
			InsuranceDescription: "Pakket beschermd tegen diefstal en verlies.", GadgetDescription: "Voeg toe aan uw bestelling.",
			FreeLabel: "Gratis", Reviews: "Beoordelingen", Offer: "Aanbieding", OnlyLeft: "Nog maar {x} over",
			Secure: "Veilig", Returns: "Retourneren", Original: "Origineel", Express: "Expres", Warranty: "Garantie",
			CheckoutHeader: "Afrekenen", PaymentMethod: "Betaalmethode", COD: "Betalen bij Levering",
			ShippingInfo: "Verzendgegevens", CompleteOrder: "Bestellung Afronden",
			OrderReceived: "OK!", OrderReceivedMsg: "Bestelling Ontvangen.", TechDesign: "Technologie & Design",
			DiscountLabel: "-50%", Certified: "Geverifieerd", CurrencyPos: CurrencyBefore,
			LegalDisclaimer: disclaimerOlandese, PrivacyPolicy: "Privacybeleid",
			TermsConditions: "Algemene Voorwaarden", CookiePolicy: "Cookiebeleid",
			RightsReserved: "Alle rechten voorbehouden.",
			GeneratedNote:  "Dit is een automatisch gegenereerde pagina voor illustratieve doeleinden.",
			ThankYouTitle:  "Bedankt {name}!",
			ThankYouMsg:    "Uw bestelling is ontvangen. We bellen u binnenkort op {phone} om de verzending te bevestigen.",
			BackToShop:     "Terug naar Winkel",
			SummaryProduct: "Product:", SummaryShipping: "Verzending:", SummaryInsurance: "Verzekering:",
			SummaryGadget: "Gadget:", SummaryTotal: "Totaal:",
		}),
	},
	"Polacco": {
		Name: "Polacco", Currency: "zł", LocaleTag: "pl-PL", DateLayout: "02.01.2006",
		CountryContext: "Poland", VerifiedRole: "Zweryfikowany Zakup",
		Announcement:   "DARMOWA DOSTAWA + PŁATNOŚĆ PRZY ODBIORZE",
		CTASubtext:     "Gwarancja Zwrotu Pieniędzy",
		ThankYouSuffix: "-dziekuje", BadgeName: "Anna",
		FormLabels: map[FormFieldID]string{
			FieldName: "Imię i Nazwisko", FieldPhone: "Telefon", FieldAddress: "Adres",
			FieldCity: "Miasto", FieldPostal: "Kod Pocztowy", FieldEmail: "Email", FieldNotes: "Uwagi do dostawy",
		},
		Names:  []string{"Anna", "Piotr", "Maria", "Krzysztof", "Katarzyna", "Andrzej", "Małgorzata", "Tomasz", "Agnieszka", "Paweł"},
		Cities: []string{"Warszawa", "Kraków", "Łódź", "Wrocław", "Poznań", "Gdańsk", "Szczecin"},
		Action: "właśnie kupił", FromWord: "z",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "Ubezpieczenie przesyłki VIP", GadgetLabel: "Dodaj 2 Ekskluzywne Gadżety",
			SocialProof:    "i 758 osób kupiło",
			CardErrorTitle: "Uwaga",
			CardErrorMsg:   "W tej chwili nie możemy akceptować płatności kartą. Wybierz sposób postępowania:",
			SwitchToCOD:    "Zapłać wygodnie przy odbiorze", MostPopular: "Najczęściej wybierana metoda",
			GiveUpOffer: "Zrezygnuj z oferty i rabatu", ConfirmCOD: "Potwierdź Płatność przy Odbiorze",
			Card:                 "Karta Kredytowa",
			InsuranceDescription: "Paczka chroniona przed kradzieżą i zgubieniem.", GadgetDescription: "Dodaj do swojego zamówienia.",
			FreeLabel: "Gratis", Reviews: "Opinie", Offer: "Oferta", OnlyLeft: "Tylko {x} sztuk",
			Secure: "Bezpiecznie", Returns: "Zwroty", Original: "Oryginał", Express: "Ekspres", Warranty: "Gwarancja",
			CheckoutHeader: "Kasa", PaymentMethod: "Metoda Płatności", COD: "Płatność przy Odbiorze",
			ShippingInfo: "Dane do Wysyłki", CompleteOrder: "Zamawiam",
			OrderReceived: "OK!", OrderReceivedMsg: "Zamówienie Przyjęte.", TechDesign: "Technologia i Design",
			DiscountLabel: "-50%", Certified: "Zweryfikowano", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerPolacco, PrivacyPolicy: "Polityka Prywatności",
			TermsConditions: "Regulamin", CookiePolicy: "Polityka Plików Cookie",
			RightsReserved: "Wszelkie prawa zastrzeżone.",
			GeneratedNote:  "To jest automatycznie wygenerowana strona w celach ilustracyjne.",
			ThankYouTitle:  "Dziękujemy {name}!",
			ThankYouMsg:    "Twoje zamówienie zostało przyjęte. Wkrótce zadzwonimy pod numer {phone}, aby potwierdzić wysyłkę.",
			BackToShop:     "Wróć do Sklepu",
			SummaryProduct: "Produkt:", SummaryShipping: "Wysyłka:", SummaryInsurance: "Ubezpieczenie:",
			SummaryGadget: "Gadżet:", SummaryTotal: "Suma:",
		}),
	},
	"Rumeno": {
		Name: "Rumeno", Currency: "lei", LocaleTag: "ro-RO", DateLayout: "02.01.2006",
		CountryContext: "Romania", VerifiedRole: "Achiziție Verificată",
		Announcement:   "LIVRARE GRATUITĂ + PLATA LA LIVRARE",
		CTASubtext:     "Garanție de Returnare a Banilor",
		ThankYouSuffix: "-multumesc", BadgeName: "Elena",
		FormLabels: map[FormFieldID]string{
			FieldName: "Nume și Prenume", FieldPhone: "Telefon", FieldAddress: "Adresa",
			FieldCity: "Oraș", FieldPostal: "Cod Poștal", FieldEmail: "Email", FieldNotes: "Note livrare",
		},
		Names:  []string{"Andrei", "Maria", "Alexandru", "Elena", "Ionut", "Ioana", "Gabriel", "Ana", "Stefan", "Roxana"},
		Cities: []string{"București", "Cluj-Napoca", "Timișoara", "Iași", "Constanța", "Craiova", "Brașov"},
		Action: "tocmai a cumpărat", FromWord: "din",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "Asigurare de expediere VIP", GadgetLabel: "Adăugați 2 Gadgeturi Exclusive",
			SocialProof:    "și 758 de persoane au cumpărat",
			CardErrorTitle: "Atenție",
			CardErrorMsg:   "Nu putem accepta plăți cu cardul momentan. Alegeți cum să procedați:",
			SwitchToCOD:    "Plătiți confortabil la livrare", MostPopular: "Cea mai aleasă metodă",
			GiveUpOffer: "Renunțați la ofertă și reducere", ConfirmCOD: "Confirmă Plata la Livrare",
			Card:                 "Card de Credit",
			InsuranceDescription: "Pachet protejat împotriva furtului și pierderii.", GadgetDescription: "Adăugați la comanda dvs.",
			FreeLabel: "Gratuit", Reviews: "Recenzii", Offer: "Ofertă", OnlyLeft: "Doar {x} rămase",
			Secure: "Securizat", Returns: "Retururi", Original: "Original", Express: "Expres", Warranty: "Garanție",
			CheckoutHeader: "Casă", PaymentMethod: "Metodă de Plată", COD: "Plata la Livrare",
			ShippingInfo: "Informații Livrare", CompleteOrder: "Finalizează Comanda",
			OrderReceived: "OK!", OrderReceivedMsg: "Comandă Primită.", TechDesign: "Tehnologie & Design",
			DiscountLabel: "-50%", Certified: "Verificat", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerRumeno, PrivacyPolicy: "Politica de Confidențialitate",
			TermsConditions: "Termeni și Condiții", CookiePolicy: "Politica de Cookie-uri",
			RightsReserved: "Toate drepturile rezervate.",
			GeneratedNote:  "Aceasta este o pagină generată automat în scop ilustrativ.",
			ThankYouTitle:  "Mulțumesc {name}!",
			ThankYouMsg:    "Comanda dvs. a fost primită. Vă vom suna în scurt timp la {phone} pentru a confirma expedierea.",
			BackToShop:     "Înapoi la Magazin",
			SummaryProduct: "Produs:", SummaryShipping: "Livrare:", SummaryInsurance: "Asigurare:",
			SummaryGadget: "Gadget:", SummaryTotal: "Total:",
		}),
	},
	"Svedese": {
		Name: "Svedese", Currency: "kr", LocaleTag: "sv-SE", DateLayout: "2006-01-02",
		CountryContext: "Sweden", VerifiedRole: "Verifierat Köp",
		Announcement:   "FRI FRAKT + BETALNING VID LEVERANS",
		CTASubtext:     "Pengarna-tillbaka-garanti",
		ThankYouSuffix: "-tack", BadgeName: "Elsa",
		FormLabels: map[FormFieldID]string{
			FieldName: "För- och Efternamn", FieldPhone: "Telefon", FieldAddress: "Adress",
			FieldCity: "Stad", FieldPostal: "Postnummer", FieldEmail: "E-post", FieldNotes: "Leveransnoteringar",
		},
		Names:  []string{"Anna", "Lars", "Maria", "Mikael", "Karin", "Anders", "Kristina", "Johan", "Lena", "Erik"},
		Cities: []string{"Stockholm", "Göteborg", "Malmö", "Uppsala", "Västerås", "Örebro", "Linköping"},
		Action: "har precis köpt", FromWord: "från",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "VIP Fraktförsäkring", GadgetLabel: "Lägg till 2 Exklusiva Gadgetar",
			SocialProof:    "och 758 personer köpte",
			CardErrorTitle: "Uppmärksamhet",
			CardErrorMsg:   "Vi kan inte acceptera kortbetalningar för tillfället. Välj hur du vill fortsätta:",
			SwitchToCOD:    "Betala bekvämt vid leverans", MostPopular: "Mest valda metod",
			GiveUpOffer: "Ge upp erbjudandet och rabatten", ConfirmCOD: "Bekräfta Postförskott",
			Card:                 "Kreditkort",
			InsuranceDescription: "Paket skyddat mot stöld och förlust.", GadgetDescription: "Lägg till i din beställning.",
			FreeLabel: "Gratis", Reviews: "Recensioner", Offer: "Erbjudande", OnlyLeft: "Endast {x} kvar",
			Secure: "Säker", Returns: "Returer", Original: "Original", Express: "Express", Warranty: "Garanti",
			CheckoutHeader: "Kassa", PaymentMethod: "Betalningsmetod", COD: "Postförskott",
			ShippingInfo: "Leveransinformation", CompleteOrder: "Slutför Beställning",
			OrderReceived: "OK!", OrderReceivedMsg: "Beställning Mottagen.", TechDesign: "Teknik & Design",
			DiscountLabel: "-50%", Certified: "Verifierad", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerSvedese, PrivacyPolicy: "Integritetspolicy",
			TermsConditions: "Villkor", CookiePolicy: "Cookiepolicy",
			RightsReserved: "Alla rättigheter förbehållna.",
			GeneratedNote:  "Detta är en automatiskt genererad sida i illustrativt syfte.",
			ThankYouTitle:  "Tack {name}!",
			ThankYouMsg:    "Din beställning har mottagits. Vi ringer dig inom kort på {phone} för att bekräfta leveransen.",
			BackToShop:     "Tillbaka till butiken",
			SummaryProduct: "Produkt:", SummaryShipping: "Frakt:", SummaryInsurance: "Försäkring:",
			SummaryGadget: "Gadget:", SummaryTotal: "Totalt:",
		}),
	},
	"Bulgaro": {
		Name: "Bulgaro", Currency: "лв", LocaleTag: "bg-BG", DateLayout: "02.01.2006",
		CountryContext: "Bulgaria", VerifiedRole: "Потвърдена покупка",
		Announcement:   "БЕЗПЛАТНА ДОСТАВКА + ПЛАЩАНЕ ПРИ ДОСТАВКА",
		CTASubtext:     "Гаранция за връщане на парите",
		ThankYouSuffix: "-blagodarya", BadgeName: "Maria",
		FormLabels: map[FormFieldID]string{
			FieldName: "Име и Фамилия", FieldPhone: "Телефон", FieldAddress: "Адрес",
			FieldCity: "Град", FieldPostal: "Пощенски код", FieldEmail: "Имейл", FieldNotes: "Бележки за доставка",
		},
		Names:  []string{"Ivan", "Maria", "Georgi", "Elena", "Dimitar", "Petya", "Nikolay", "Daniela", "Petar", "Gergana"},
		Cities: []string{"Sofia", "Plovdiv", "Varna", "Burgas", "Ruse", "Stara Zagora", "Pleven"},
		Action: "току-що закупи", FromWord: "от",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "VIP Застраховка на пратката", GadgetLabel: "Добавете 2 ексклузивни джаджи",
			SocialProof:    "и 758 души закупиха",
			CardErrorTitle: "Внимание",
			CardErrorMsg:   "В момента не можем да приемаме плащания с карти. Изберете как да продължите:",
			SwitchToCOD:    "Платете удобно при доставка", MostPopular: "Най-избран метод",
			GiveUpOffer: "Откажете се от офертата и отстъпката", ConfirmCOD: "Потвърди Наложен Платеж",
			Card:                 "Кредитна карта",
			InsuranceDescription: "Пакет, защитен от кражба и загуба.", GadgetDescription: "Добавете към поръчката си.",
			FreeLabel: "Безплатно", Reviews: "Отзиви", Offer: "Оферта", OnlyLeft: "Само {x} останали",
			Secure: "Сигурно", Returns: "Връщане", Original: "Оригинал", Express: "Експрес", Warranty: "Гаранция",
			CheckoutHeader: "Поръчка", PaymentMethod: "Начин на плащане", COD: "Наложен платеж",
			ShippingInfo: "Данни за доставка", CompleteOrder: "Завърши поръчката",
			OrderReceived: "ОК!", OrderReceivedMsg: "Поръчката е получена.", TechDesign: "Технология и дизайн",
			DiscountLabel: "-50%", Certified: "Потвърдено", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerBulgaro, PrivacyPolicy: "Политика за поверителност",
			TermsConditions: "Общи условия", CookiePolicy: "Политика за бисквитки",
			RightsReserved: "Всички права запазени.",
			GeneratedNote:  "Това е автоматично генерирана страница с илюстративна цел.",
			ThankYouTitle:  "Благодаря {name}!",
			ThankYouMsg:    "Поръчката ви е получена. Ще ви се обадим скоро на {phone}, за да потвърдим пратката.",
			BackToShop:     "Обратно към магазина",
			SummaryProduct: "Продукт:", SummaryShipping: "Доставка:", SummaryInsurance: "Застраховка:",
			SummaryGadget: "Джаджа:", SummaryTotal: "Общо:",
		}),
	},
	"Greco": {
		Name: "Greco", Currency: "€", LocaleTag: "el-GR", DateLayout: "2/1/2006",
		CountryContext: "Greece", VerifiedRole: "Επαληθευμένη Αγορά",
		Announcement:   "ΔΩΡΕΑΝ ΜΕΤΑΦΟΡΙΚΑ + ΑΝΤΙΚΑΤΑΒΟΛΗ",
		CTASubtext:     "Εγγύηση επιστροφής χρημάτων",
		ThankYouSuffix: "-efcharisto", BadgeName: "Eleni",
		FormLabels: map[FormFieldID]string{
			FieldName: "Ονοματεπώνυμο", FieldPhone: "Τηλέφωνο", FieldAddress: "Διεύθυνση",
			FieldCity: "Πόλη", FieldPostal: "ΤΚ", FieldEmail: "Email", FieldNotes: "Σημειώσεις παράδοσης",
		},
		Names:  []string{"Maria", "Giorgos", "Eleni", "Dimitris", "Katerina", "Yiannis", "Sofia", "Nikos", "Anna", "Kostas"},
		Cities: []string{"Athína", "Thessaloníki", "Pátra", "Irákleio", "Lárisa", "Vólos", "Ioánnina"},
		Action: "μόλις αγόρασε", FromWord: "από",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "VIP Ασφάλιση Αποστολής", GadgetLabel: "Προσθέστε 2 αποκλειστικά gadget",
			SocialProof:    "και 758 άτομα αγόρασαν",
			CardErrorTitle: "Προσοχή",
			CardErrorMsg:   "Δεν μπορούμε να δεχτούμε πληρωμές με κάρτα αυτή τη στιγμή. Επιλέξτε πώς να προχωρήσετε:",
			SwitchToCOD:    "Πληρώστε άνετα με την παράδοση", MostPopular: "Η πιο δημοφιλής μέθοδος",
			GiveUpOffer: "Παραιτηθείτε από την προσφορά και την έκπτωση", ConfirmCOD: "Επιβεβαίωση Αντικαταβολής",
			Card:                 "Πιστωτική Κάρτα",
			InsuranceDescription: "Πακέτο προστατευμένο από κλοπή και απώλεια.", GadgetDescription: "Προσθέστε στην παραγγελία σας.",
			FreeLabel: "Δωρεάν", Reviews: "Κριτικές", Offer: "Προσφορά", OnlyLeft: "Μόνο {x} απομένουν",
			Secure: "Ασφαλές", Returns: "Επιστροφές", Original: "Γνήσιο", Express: "Εξπρές", Warranty: "Εγγύηση",
			CheckoutHeader: "Ταμείο", PaymentMethod: "Τρόπος Πληρωμής", COD: "Αντικαταβολή",
			ShippingInfo: "Στοιχεία Αποστολής", CompleteOrder: "Ολοκλήρωση Παραγγελίας",
			OrderReceived: "OK!", OrderReceivedMsg: "Παραγγελία Ελήφθη.", TechDesign: "Τεχνολογία & Σχεδιασμός",
			DiscountLabel: "-50%", Certified: "Επαληθευμένο", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerGreco, PrivacyPolicy: "Πολιτική Απορρήτου",
			TermsConditions: "Όροι και Προϋποθέσεις", CookiePolicy: "Πολιτική Cookies",
			RightsReserved: "Με επιφύλαξη παντός δικαιώματος.",
			GeneratedNote:  "Αυτή είναι μια σελίδα που δημιουργείται αυτόματα για επεξηγηματικούς σκοπούς.",
			ThankYouTitle:  "Ευχαριστώ {name}!",
			ThankYouMsg:    "Η παραγγελία σας ελήφθη. Θα σας καλέσουμε σύντομα στο {phone} για επιβεβαίωση της αποστολής.",
			BackToShop:     "Επιστροφή στο κατάστημα",
			SummaryProduct: "Προϊόν:", SummaryShipping: "Αποστολή:", SummaryInsurance: "Ασφάλιση:",
			SummaryGadget: "Gadget:", SummaryTotal: "Σύνολο:",
		}),
	},
	"Ungherese": {
		Name: "Ungherese", Currency: "Ft", LocaleTag: "hu-HU", DateLayout: "2006. 01. 02.",
		CountryContext: "Hungary", VerifiedRole: "Ellenőrzött Vásárlás",
		Announcement:   "INGYENES SZÁLLÍTÁS + UTÁNVÉT",
		CTASubtext:     "Pénzvisszafizetési garancia",
		ThankYouSuffix: "-koszonom", BadgeName: "Hanna",
		FormLabels: map[FormFieldID]string{
			FieldName: "Teljes Név", FieldPhone: "Telefonszám", FieldAddress: "Cím",
			FieldCity: "Város", FieldPostal: "Irányítószám", FieldEmail: "E-mail", FieldNotes: "Szállítási megjegyzések",
		},
		Names:  []string{"László", "Mária", "István", "Erzsébet", "József", "Katalin", "Zoltán", "Éva", "János", "Zsuzsanna"},
		Cities: []string{"Budapest", "Debrecen", "Szeged", "Miskolc", "Pécs", "Győr", "Nyíregháza"},
		Action: "éppen most vásárolt", FromWord: "innen:",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "VIP Szállítási Biztosítás", GadgetLabel: "Adjon hozzá 2 exkluzív kütyüt",
			SocialProof:    "és 758 ember vásárolt",
			CardErrorTitle: "Figyelem",
			CardErrorMsg:   "Jelenleg nem tudunk kártyás fizetést fogadni. Válassza ki, hogyan tovább:",
			SwitchToCOD:    "Fizessen kényelmesen utánvéttel", MostPopular: "A leggyakrabban választott módszer",
			GiveUpOffer: "Mondjon le az ajánlatról és a kedvezményről", ConfirmCOD: "Utánvét Megerősítése",
			Card:                 "Hitelkártya",
			InsuranceDescription: "Csomag lopás és elvesztés ellen védett.", GadgetDescription: "Adja hozzá a rendeléséhez.",
			FreeLabel: "Ingyenes", Reviews: "Vélemények", Offer: "Ajánlat", OnlyLeft: "Már csak {x} maradt",
			Secure: "Biztonságos", Returns: "Visszaküldés", Original: "Eredeti", Express: "Expressz", Warranty: "Garancia",
			CheckoutHeader: "Pénztár", PaymentMethod: "Fizetési mód", COD: "Utánvét",
			ShippingInfo: "Szállítási adatok", CompleteOrder: "Rendelés Befejezése",
			OrderReceived: "OK!", OrderReceivedMsg: "Rendelés Beérkezett.", TechDesign: "Technológia és Design",
			DiscountLabel: "-50%", Certified: "Ellenőrzött", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerUngherese, PrivacyPolicy: "Adatvédelmi irányelvek",
			TermsConditions: "Felhasználási feltételek", CookiePolicy: "Cookie szabályzat",
			RightsReserved: "Minden jog fenntartva.",
			GeneratedNote:  "Ez egy automatikusan generált oldal illusztrációs céllal.",
			ThankYouTitle:  "Köszönöm {name}!",
			ThankYouMsg:    "A rendelését megkaptuk. Hamarosan felhívjuk Önt a {phone} számon a szállítás megerősítése érdekében.",
			BackToShop:     "Vissza a boltba",
			SummaryProduct: "Termék:", SummaryShipping: "Szállítás:", SummaryInsurance: "Biztosítás:",
			SummaryGadget: "Kütyü:", SummaryTotal: "Összesen:",
		}),
	},
	"Croato": {
		Name: "Croato", Currency: "€", LocaleTag: "hr-HR", DateLayout: "02. 01. 2006.",
		CountryContext: "Croatia", VerifiedRole: "Potvrđena kupnja",
		Announcement:   "BESPLATNA DOSTAVA + PLAĆANJE POUZEĆEM",
		CTASubtext:     "Jamstvo povrata novca",
		ThankYouSuffix: "-hvala", BadgeName: "Lucija",
		FormLabels: map[FormFieldID]string{
			FieldName: "Ime i Prezime", FieldPhone: "Telefon", FieldAddress: "Adresa",
			FieldCity: "Grad", FieldPostal: "Poštanski broj", FieldEmail: "E-mail", FieldNotes: "Napomene za dostavu",
		},
		Names:  []string{"Ivan", "Marija", "Josip", "Ana", "Marko", "Ivana", "Tomislav", "Katarina", "Luka", "Petra"},
		Cities: []string{"Zagreb", "Split", "Rijeka", "Osijek", "Zadar", "Pula", "Slavonski Brod"},
		Action: "upravo kupio", FromWord: "iz",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "VIP Osiguranje Pošiljke", GadgetLabel: "Dodajte 2 ekskluzivna gadgeta",
			SocialProof:    "i 758 ljudi je kupilo",
			CardErrorTitle: "Pažnja",
			CardErrorMsg:   "Trenutno ne možemo prihvatiti plaćanje karticama. Odaberite kako nastaviti:",
			SwitchToCOD:    "Platite udobno pouzećem", MostPopular: "Najčešće odabrana metoda",
			GiveUpOffer: "Odustani od ponude i popusta", ConfirmCOD: "Potvrdi Plaćanje Pouzećem",
			Card:                 "Kreditna kartica",
			InsuranceDescription: "Paket zaštićen od krađe i gubitka.", GadgetDescription: "Dodajte u svoju narudžbu.",
			FreeLabel: "Besplatno", Reviews: "Recenzije", Offer: "Ponuda", OnlyLeft: "Još samo {x}",
			Secure: "Sigurno", Returns: "Povrat", Original: "Original", Express: "Ekspres", Warranty: "Jamstvo",
			CheckoutHeader: "Blagajna", PaymentMethod: "Način plaćanja", COD: "Plaćanje pouzećem",
			ShippingInfo: "Podaci o dostavi", CompleteOrder: "Završi narudžbu",
			OrderReceived: "OK!", OrderReceivedMsg: "Narudžba zaprimljena.", TechDesign: "Tehnologija i dizajn",
			DiscountLabel: "-50%", Certified: "Potvrđeno", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerCroato, PrivacyPolicy: "Pravila privatnosti",
			TermsConditions: "Uvjeti korištenja", CookiePolicy: "Politika kolačića",
			RightsReserved: "Sva prava pridržana.",
			GeneratedNote:  "Ovo je automatski generirana stranica u ilustrativne svrhe.",
			ThankYouTitle:  "Hvala {name}!",
			ThankYouMsg:    "Vaša narudžba je zaprimljena. Uskoro ćemo vas nazvati na {phone} kako bismo potvrdili isporuku.",
			BackToShop:     "Povratak u trgovinu",
			SummaryProduct: "Proizvod:", SummaryShipping: "Dostava:", SummaryInsurance: "Osiguranje:",
			SummaryGadget: "Gadget:", SummaryTotal: "Ukupno:",
		}),
	},
	"Serbo": {
		Name: "Serbo", Currency: "din", LocaleTag: "sr-RS", DateLayout: "02.01.2006.",
		CountryContext: "Serbia", VerifiedRole: "Proverena kupovina",
		Announcement:   "BESPLATNA DOSTAVA + PLAĆANJE POUZEĆEM",
		CTASubtext:     "Garancija povrata novca",
		ThankYouSuffix: "-hvala", BadgeName: "Milica",
		FormLabels: map[FormFieldID]string{
			FieldName: "Ime i Prezime", FieldPhone: "Telefon", FieldAddress: "Adresa",
			FieldCity: "Grad", FieldPostal: "Poštanski broj", FieldEmail: "E-mail", FieldNotes: "Napomene za dostavu",
		},
		Names:  []string{"Marko", "Jelena", "Miloš", "Marija", "Nikola", "Ana", "Stefan", "Dragana", "Aleksandar", "Milica"},
		Cities: []string{"Beograd", "Novi Sad", "Niš", "Kragujevac", "Subotica", "Pančevo"},
		Action: "upravo kupio", FromWord: "iz",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "VIP Osiguranje Pošiljke", GadgetLabel: "Dodajte 2 ekskluzivna gedžeta",
			SocialProof:    "i 758 ljudi je kupilo",
			CardErrorTitle: "Pažnja",
			CardErrorMsg:   "Trenutno ne možemo prihvatiti plaćanje karticama. Odaberite kako nastaviti:",
			SwitchToCOD:    "Platite udobno pouzećem", MostPopular: "Najčešće odabrana metoda",
			GiveUpOffer: "Odustani od ponude i popusta", ConfirmCOD: "Potvrdi Plaćanje Pouzećem",
			Card:                 "Kreditna kartica",
			InsuranceDescription: "Paket zaštićen od krađe i gubitka.", GadgetDescription: "Dodajte u svoju porudžbinu.",
			FreeLabel: "Besplatno", Reviews: "Recenzije", Offer: "Ponuda", OnlyLeft: "Samo {x} preostalo",
			Secure: "Sigurno", Returns: "Povraćaj", Original: "Original", Express: "Ekspres", Warranty: "Garancija",
			CheckoutHeader: "Kasa", PaymentMethod: "Način plaćanja", COD: "Plaćanje pouzećem",
			ShippingInfo: "Podaci o dostavi", CompleteOrder: "Završi porudžbinu",
			OrderReceived: "OK!", OrderReceivedMsg: "Porudžbina primljena.", TechDesign: "Tehnologija i dizajn",
			DiscountLabel: "-50%", Certified: "Provereno", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerSerbo, PrivacyPolicy: "Politika privatnosti",
			TermsConditions: "Uslovi korišćenja", CookiePolicy: "Politika kolačića",
			RightsReserved: "Sva prava zadržana.",
			GeneratedNote:  "Ovo je automatski generisana stranica u ilustrativne svrhe.",
			ThankYouTitle:  "Hvala {name}!",
			ThankYouMsg:    "Vaša porudžbina je primljena. Uskoro ćemo vas pozvati na {phone} da potvrdimo isporuku.",
			BackToShop:     "Nazad u prodavnicu",
			SummaryProduct: "Proizvod:", SummaryShipping: "Dostava:", SummaryInsurance: "Osiguranje:",
			SummaryGadget: "Gedžet:", SummaryTotal: "Ukupno:",
		}),
	},
	"Slovacco": {
		Name: "Slovacco", Currency: "€", LocaleTag: "sk-SK", DateLayout: "02.01.2006",
		CountryContext: "Slovakia", VerifiedRole: "Overený nákup",
		Announcement:   "DOPRAVA ZDARMA + PLATBA NA DOBIERKU",
		CTASubtext:     "Záruka vrátenia peňazí",
		ThankYouSuffix: "-dakujem", BadgeName: "Nika",
		FormLabels: map[FormFieldID]string{
			FieldName: "Meno a Priezvisko", FieldPhone: "Telefónne číslo", FieldAddress: "Adresa a číslo domu",
			FieldCity: "Mesto", FieldPostal: "PSČ", FieldEmail: "Email", FieldNotes: "Poznámky pre kuriéra",
		},
		Names:  []string{"Jakub", "Sofia", "Samuel", "Ema", "Adam", "Nina", "Tomáš", "Viktória", "Martin", "Laura"},
		Cities: []string{"Bratislava", "Košice", "Prešov", "Žilina", "Banská Bystrica", "Nitra", "Trnava"},
		Action: "práve kúpil/a", FromWord: "z",
		Labels: MergeLabels(commonLabels(), UILabels{
			ShippingInsurance: "VIP Poistenie Zásielky", GadgetLabel: "Pridať 2 Exkluzívne Gadgety",
			SocialProof:          "a ďalších 758 ľudí si kúpilo",
			InsuranceDescription: "Balík chránený proti krádeži a strate.", GadgetDescription: "Pridať do vašej objednávky.",
			FreeLabel: "Zadarmo", Reviews: "Recenzie", Offer: "Ponuka", OnlyLeft: "Zostáva len {x} kusov",
			Secure: "Bezpečné", Returns: "Vrátenie", Original: "Originál", Express: "Expres", Warranty: "Záruka",
			CheckoutHeader: "Pokladňa", PaymentMethod: "Spôsob platby", COD: "Platba na dobierku",
			ShippingInfo: "Dodacie údaje", CompleteOrder: "Dokončiť objednávku",
			OrderReceived: "OK!", OrderReceivedMsg: "Objednávka prijatá.", TechDesign: "Technológia a Dizajn",
			DiscountLabel: "-50%", Certified: "Overené", CurrencyPos: CurrencyAfter,
			LegalDisclaimer: disclaimerSlovacco, PrivacyPolicy: "Zásady ochrany osobných údajov",
			TermsConditions: "Obchodné podmienky", CookiePolicy: "Zásady používania súborov cookie",
			RightsReserved: "Všetky práva vyhradené.",
			GeneratedNote:  "Toto je automaticky generovaná stránka na ilustračné účely.",
			ThankYouTitle:  "Ďakujeme {name}!",
			ThankYouMsg:    "Vaša objednávka bola prijatá. Náš operátor vás bude čoskoro kontaktovať na telefónnom čísle {phone} na potvrdenie objednávky.",
			BackToShop:     "Späť do obchodu",
			SummaryProduct: "Produkt:", SummaryShipping: "Doprava:", SummaryInsurance: "Poistenie:",
			SummaryGadget: "Doplnok:", SummaryTotal: "Celkom:",
		}),
	},
}

func germanFormLabels() map[FormFieldID]string {
	return map[FormFieldID]string{
		FieldName: "Vor- und Nachname", FieldPhone: "Telefon", FieldAddress: "Adresse",
		FieldCity: "Stadt", FieldPostal: "PLZ", FieldEmail: "E-Mail", FieldNotes: "Lieferhinweise",
	}
}

// germanLabels is shared by the German and Austrian locales, which use
// the same microcopy.
func germanLabels() UILabels {
	return MergeLabels(commonLabels(), UILabels{
		ShippingInsurance: "VIP Versandversicherung", GadgetLabel: "Fügen Sie 2 exklusive Gadgets hinzu",
		SocialProof:    "und 758 Personen haben gekauft",
		CardErrorTitle: "Achtung",
		CardErrorMsg:   "Wir können derzeit keine Kartenzahlungen akzeptieren. Wählen Sie, wie Sie fortfahren möchten:",
		SwitchToCOD:    "Bequem bei Lieferung bezahlen", MostPopular: "Meistgewählte Methode",
		GiveUpOffer: "Auf Angebot und Rabatt verzichten", ConfirmCOD: "Nachnahme Bestätigen",
		Card:                 "Kreditkarte",
		InsuranceDescription: "Paket gegen Diebstahl und Verlust geschützt.", GadgetDescription: "Zu Ihrer Bestellung hinzufügen.",
		FreeLabel: "Kostenlos", Reviews: "Bewertungen", Offer: "Angebot", OnlyLeft: "Nur noch {x} übrig",
		Secure: "Sicher", Returns: "Retouren", Original: "Original", Express: "Express", Warranty: "Garantie",
		CheckoutHeader: "Kasse", PaymentMethod: "Zahlungsmethode", COD: "Nachnahme",
		ShippingInfo: "Versandinformationen", CompleteOrder: "Bestellung Abschließen",
		OrderReceived: "OK!", OrderReceivedMsg: "Bestellung Erhalten.", TechDesign: "Technologie & Design",
		DiscountLabel: "-50%", Certified: "Verifiziert", CurrencyPos: CurrencyAfter,
		LegalDisclaimer: disclaimerTedesco, PrivacyPolicy: "Datenschutz",
		TermsConditions: "AGB", CookiePolicy: "Cookie-Richtlinie",
		RightsReserved: "Alle Rechte vorbehalten.",
		GeneratedNote:  "Dies ist eine automatisch generierte Seite zu Illustrationszwecken.",
		ThankYouTitle:  "Danke {name}!",
		ThankYouMsg:    "Ihre Bestellung ist eingegangen. Wir rufen Sie in Kürze unter {phone} an, um den Versand zu bestätigen.",
		BackToShop:     "Zurück zum Einkaufen",
		SummaryProduct: "Produkt:", SummaryShipping: "Versand:", SummaryInsurance: "Versicherung:",
		SummaryGadget: "Gadget:", SummaryTotal: "Gesamt:",
	})
}
